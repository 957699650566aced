package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/middleware"
	"github.com/mighty-stack/swiftship/internal/models"
)

func CustomerRoutes(r *gin.Engine, ctrl Controllers) {
	customer := r.Group("/customer")
	customer.Use(middleware.RequireRoles(ctrl.Sessions, models.RoleCustomer))
	{
		customer.GET("/dashboard", ctrl.Customer.Dashboard)
		customer.POST("/book-shipment", ctrl.Customer.BookShipment)
		customer.GET("/payment-success", ctrl.Customer.PaymentSuccess)
		customer.GET("/tracking/:id", ctrl.Customer.Tracking)
		customer.GET("/profile", ctrl.Customer.Profile)
	}
}
