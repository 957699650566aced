package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/middleware"
	"github.com/mighty-stack/swiftship/internal/models"
)

func DriverRoutes(r *gin.Engine, ctrl Controllers) {
	driver := r.Group("/driver")
	driver.Use(middleware.RequireRoles(ctrl.Sessions, models.RoleDriver))
	{
		driver.GET("/dashboard", ctrl.Driver.Dashboard)
		driver.GET("/jobs/:id", ctrl.Driver.JobDetails)
		driver.PUT("/jobs/:id/accept", ctrl.Driver.AcceptJob)
		driver.PUT("/jobs/:id/start", ctrl.Driver.StartJob)
		driver.PUT("/jobs/:id/complete", ctrl.Driver.CompleteJob)
		driver.GET("/earnings", ctrl.Driver.EarningsView)
		driver.GET("/profile", ctrl.Driver.Profile)
		driver.PUT("/profile", ctrl.Driver.UpdateProfile)
	}
}
