package routes

import (
	"github.com/gin-gonic/gin"
)

// AuthRoutes registers the public views: home, the auth forms and actions,
// the session snapshot, and the role-home interstitial.
func AuthRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/", ctrl.Auth.Home)
	r.GET("/login", ctrl.Auth.LoginView)
	r.GET("/register", ctrl.Auth.RegisterView)
	r.GET("/session", ctrl.Auth.Session)
	r.GET("/redirect", ctrl.Auth.Redirect)

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/logout", ctrl.Auth.Logout)
	}
}
