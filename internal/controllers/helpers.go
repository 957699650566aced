package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/models"
	"github.com/mighty-stack/swiftship/internal/store"
)

// requirePrincipal returns the signed-in principal. The route guard already
// checked it at dispatch time, but the session can be invalidated between
// that check and the handler body; a nil here redirects to login instead of
// dereferencing a gone principal.
func requirePrincipal(c *gin.Context, sessions *store.SessionStore) *models.User {
	principal := sessions.Principal()
	if principal == nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
	return principal
}

// abortForAuth handles the one error class the view layer owns: a 401/403
// from the backend invalidates the session, clears the persisted token, and
// forces navigation to the login view. Returns true when it consumed the
// error.
func abortForAuth(c *gin.Context, sessions *store.SessionStore, err error) bool {
	if !api.IsAuthError(err) {
		return false
	}
	sessions.Invalidate()
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
	return true
}

// errorStatus maps a store failure onto the response status: backend
// failures pass through, transport failures read as a bad gateway.
func errorStatus(err error) int {
	if apiErr, ok := err.(*api.Error); ok {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
