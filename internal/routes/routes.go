package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/controllers"
	"github.com/mighty-stack/swiftship/internal/store"
)

// Controllers bundles the view controllers and the session store the guard
// middleware consults.
type Controllers struct {
	Sessions *store.SessionStore
	Auth     *controllers.AuthController
	Customer *controllers.CustomerController
	Driver   *controllers.DriverController
	Admin    *controllers.AdminController
}

// SetupRouter wires every view group onto a gin engine.
func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlogger.SetLogger())

	AuthRoutes(r, ctrl)
	CustomerRoutes(r, ctrl)
	DriverRoutes(r, ctrl)
	AdminRoutes(r, ctrl)

	// Unknown paths fall back to home, like the SPA's catch-all route.
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	return r
}
