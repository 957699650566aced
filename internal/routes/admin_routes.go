package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/middleware"
	"github.com/mighty-stack/swiftship/internal/models"
)

func AdminRoutes(r *gin.Engine, ctrl Controllers) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRoles(ctrl.Sessions, models.RoleAdmin))
	{
		admin.GET("/dashboard", ctrl.Admin.Dashboard)
		admin.GET("/shipments", ctrl.Admin.ListShipments)
		admin.PUT("/shipments/:id", ctrl.Admin.UpdateShipment)
		admin.PUT("/shipments/:id/assign-driver", ctrl.Admin.AssignDriver)
		admin.GET("/users", ctrl.Admin.ListUsers)
		admin.PUT("/users/:id", ctrl.Admin.UpdateUser)
		admin.DELETE("/users/:id", ctrl.Admin.DeleteUser)
		admin.GET("/reports", ctrl.Admin.Reports)
	}
}
