package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/models"
	"github.com/mighty-stack/swiftship/internal/selectors"
	"github.com/mighty-stack/swiftship/internal/store"
)

// CustomerController owns the customer-facing views: the shipments
// dashboard, booking with its payment leg, tracking, and the profile.
type CustomerController struct {
	Sessions  *store.SessionStore
	Shipments *store.ShipmentStore
	Payments  *store.PaymentStore
}

// Dashboard fetches the customer's shipments and renders them with
// per-status counts. Navigating back to the list closes any open tracking
// detail.
func (ctrl *CustomerController) Dashboard(c *gin.Context) {
	ctrl.Shipments.ClearSelected()
	if err := ctrl.Shipments.FetchAll(c.Request.Context()); err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
	}

	snap := ctrl.Shipments.Snapshot()
	counts := selectors.CountShipmentsByStatus(snap.Items)
	c.JSON(http.StatusOK, gin.H{
		"shipments": snap.Items,
		"stats": gin.H{
			"total":     len(snap.Items),
			"pending":   counts[models.ShipmentPending],
			"delivered": counts[models.ShipmentDelivered],
			"cancelled": counts[models.ShipmentCancelled],
		},
		"pending": snap.Pending,
		"error":   snap.LastError,
	})
}

// BookShipment creates a new booking and opens a checkout session for it.
// The fresh shipment lands at the front of the cached list; the caller
// finishes payment at the gateway's authorization URL and comes back through
// PaymentSuccess. A failed init leaves the booked shipment in place, like a
// customer who abandons checkout.
func (ctrl *CustomerController) BookShipment(c *gin.Context) {
	principal := requirePrincipal(c, ctrl.Sessions)
	if principal == nil {
		return
	}

	var booking store.BookingRequest
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	shipment, err := ctrl.Shipments.Create(ctx, booking)
	if err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Shipments.Snapshot().LastError})
		return
	}

	session, err := ctrl.Payments.Init(ctx, principal.Email, float64(shipment.Price), shipment.ID)
	if err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{
			"shipment": shipment,
			"error":    ctrl.Payments.Snapshot().LastError,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"shipment": shipment,
		"payment": gin.H{
			"authorizationUrl": session.AuthorizationURL,
			"reference":        session.Reference,
		},
	})
}

// PaymentSuccess is the gateway's return view. It verifies the reference
// from the query string and tells the caller where to go next.
func (ctrl *CustomerController) PaymentSuccess(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid payment reference",
		})
		return
	}

	verification, err := ctrl.Payments.Verify(c.Request.Context(), reference)
	if err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{
			"status":  "error",
			"message": ctrl.Payments.Snapshot().LastError,
		})
		return
	}

	if verification.Status != "success" {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": "Payment verification failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Payment successful! Redirecting...",
		"redirect": "/customer/dashboard",
	})
}

// Tracking loads one shipment by id for the tracking view.
func (ctrl *CustomerController) Tracking(c *gin.Context) {
	if err := ctrl.Shipments.FetchOne(c.Request.Context(), c.Param("id")); err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Shipments.Snapshot().LastError})
		return
	}

	shipment := ctrl.Shipments.Selected()
	c.JSON(http.StatusOK, gin.H{
		"shipment": shipment,
		"badge":    selectors.ShipmentStatusBadge(shipment.Status),
	})
}

// Profile renders the signed-in principal.
func (ctrl *CustomerController) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": ctrl.Sessions.Principal()})
}
