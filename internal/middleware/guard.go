package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/guard"
	"github.com/mighty-stack/swiftship/internal/store"
)

// RequireRoles gates a view group behind the navigation guard. The decision
// is re-evaluated from the session store on every request: signed-out
// visitors go to the login view, signed-in visitors with the wrong role go
// home.
func RequireRoles(sessions *store.SessionStore, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch guard.Evaluate(sessions.Principal(), roles) {
		case guard.RedirectLogin:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case guard.RedirectHome:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		default:
			c.Next()
		}
	}
}
