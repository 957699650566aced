package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/models"
	"github.com/mighty-stack/swiftship/internal/selectors"
	"github.com/mighty-stack/swiftship/internal/store"
)

// AdminController owns the admin views: the overview dashboard, shipment
// management (status updates, driver assignment), user management, and the
// reports page.
type AdminController struct {
	Sessions  *store.SessionStore
	Shipments *store.ShipmentStore
	Users     *store.UserStore
}

// Dashboard fetches shipments and users and renders the platform overview.
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	if err := ctrl.Shipments.FetchAll(ctx); err != nil && abortForAuth(c, ctrl.Sessions, err) {
		return
	}
	if err := ctrl.Users.FetchAll(ctx); err != nil && abortForAuth(c, ctrl.Sessions, err) {
		return
	}

	shipments := ctrl.Shipments.Snapshot()
	users := ctrl.Users.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"shipmentsByStatus": selectors.CountShipmentsByStatus(shipments.Items),
		"usersByRole":       selectors.CountUsersByRole(users.Items),
		"revenue":           selectors.DeliveredRevenue(shipments.Items),
		"error":             firstError(shipments.LastError, users.LastError),
	})
}

// ListShipments renders the management table, with each shipment's assigned
// driver resolved by joining the weak driver reference against the users
// collection.
func (ctrl *AdminController) ListShipments(c *gin.Context) {
	ctx := c.Request.Context()
	if err := ctrl.Shipments.FetchAll(ctx); err != nil && abortForAuth(c, ctrl.Sessions, err) {
		return
	}
	if err := ctrl.Users.FetchAll(ctx); err != nil && abortForAuth(c, ctrl.Sessions, err) {
		return
	}

	shipments := ctrl.Shipments.Snapshot()
	users := ctrl.Users.Snapshot()

	byID := make(map[string]models.User, len(users.Items))
	for _, u := range users.Items {
		byID[u.ID] = u
	}

	rows := make([]gin.H, 0, len(shipments.Items))
	for _, s := range shipments.Items {
		row := gin.H{
			"shipment": s,
			"badge":    selectors.ShipmentStatusBadge(s.Status),
		}
		if driver, ok := byID[s.DriverID]; ok {
			row["driver"] = driver
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{
		"shipments": rows,
		"pending":   shipments.Pending,
		"error":     firstError(shipments.LastError, users.LastError),
	})
}

// UpdateShipment applies field changes, typically a status update.
func (ctrl *AdminController) UpdateShipment(c *gin.Context) {
	var changes map[string]any
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipment, err := ctrl.Shipments.Update(c.Request.Context(), c.Param("id"), changes)
	if err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Shipments.Snapshot().LastError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipment": shipment})
}

type assignDriverInput struct {
	DriverID string `json:"driverId" binding:"required"`
}

// AssignDriver attaches a driver to a shipment.
func (ctrl *AdminController) AssignDriver(c *gin.Context) {
	var input assignDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipment, err := ctrl.Shipments.AssignDriver(c.Request.Context(), c.Param("id"), input.DriverID)
	if err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Shipments.Snapshot().LastError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipment": shipment})
}

// ListUsers renders the user management table.
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	if err := ctrl.Users.FetchAll(c.Request.Context()); err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
	}

	snap := ctrl.Users.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"users":   snap.Items,
		"pending": snap.Pending,
		"error":   snap.LastError,
	})
}

// UpdateUser applies account changes (role, status, contact fields).
func (ctrl *AdminController) UpdateUser(c *gin.Context) {
	var changes map[string]any
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctrl.Users.Update(c.Request.Context(), c.Param("id"), changes)
	if err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Users.Snapshot().LastError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes an account.
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	if err := ctrl.Users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Users.Snapshot().LastError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// Reports renders the aggregates behind the admin report charts.
func (ctrl *AdminController) Reports(c *gin.Context) {
	if err := ctrl.Shipments.FetchAll(c.Request.Context()); err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
	}

	snap := ctrl.Shipments.Snapshot()
	counts := selectors.CountShipmentsByStatus(snap.Items)
	c.JSON(http.StatusOK, gin.H{
		"byStatus":  counts,
		"delivered": counts[models.ShipmentDelivered],
		"cancelled": counts[models.ShipmentCancelled],
		"revenue":   selectors.DeliveredRevenue(snap.Items),
		"error":     snap.LastError,
	})
}

func firstError(errs ...string) string {
	for _, e := range errs {
		if e != "" {
			return e
		}
	}
	return ""
}
