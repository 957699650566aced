package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/models"
	"github.com/mighty-stack/swiftship/internal/selectors"
	"github.com/mighty-stack/swiftship/internal/statemachine"
	"github.com/mighty-stack/swiftship/internal/store"
)

// DriverController owns the driver-facing views: the jobs dashboard, job
// details with lifecycle actions, the earnings ledger, and the profile.
type DriverController struct {
	Sessions *store.SessionStore
	Jobs     *store.JobStore
	Earnings *store.EarningStore
	Drivers  *store.DriverStore
}

// Dashboard fetches the job list and renders it partitioned into the
// assigned / current / completed buckets. Navigating back to the list
// closes any open job detail.
func (ctrl *DriverController) Dashboard(c *gin.Context) {
	ctrl.Jobs.ClearSelected()
	if err := ctrl.Jobs.FetchAll(c.Request.Context()); err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
	}

	snap := ctrl.Jobs.Snapshot()
	buckets := selectors.PartitionJobs(snap.Items)
	c.JSON(http.StatusOK, gin.H{
		"assigned":  buckets.Assigned,
		"current":   buckets.Current,
		"completed": buckets.Completed,
		"stats": gin.H{
			"assigned":  len(buckets.Assigned),
			"current":   len(buckets.Current),
			"completed": len(buckets.Completed),
		},
		"pending": snap.Pending,
		"error":   snap.LastError,
	})
}

// JobDetails loads one job and renders it with the actions its status
// allows, so the view knows which buttons to offer.
func (ctrl *DriverController) JobDetails(c *gin.Context) {
	if err := ctrl.Jobs.FetchOne(c.Request.Context(), c.Param("id")); err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Jobs.Snapshot().LastError})
		return
	}

	job := ctrl.Jobs.Selected()
	c.JSON(http.StatusOK, gin.H{
		"job":     job,
		"actions": statemachine.ActionsFrom(job.Status),
		"badge":   selectors.JobStatusBadge(job.Status),
	})
}

// AcceptJob, StartJob and CompleteJob drive the forward-only lifecycle. When
// the job is cached, the transition table rejects a disallowed action before
// any round trip; the backend stays the authority either way, and a
// server-side rejection leaves the cached job untouched with the server's
// message in the store.
func (ctrl *DriverController) AcceptJob(c *gin.Context) {
	ctrl.transition(c, statemachine.ActionAccept, ctrl.Jobs.Accept)
}

func (ctrl *DriverController) StartJob(c *gin.Context) {
	ctrl.transition(c, statemachine.ActionStart, ctrl.Jobs.Start)
}

func (ctrl *DriverController) CompleteJob(c *gin.Context) {
	ctrl.transition(c, statemachine.ActionComplete, ctrl.Jobs.Complete)
}

func (ctrl *DriverController) transition(c *gin.Context, action string, op func(ctx context.Context, id string) (models.Job, error)) {
	id := c.Param("id")
	if status, ok := ctrl.Jobs.CachedStatus(id); ok {
		if err := statemachine.CanTransition(status, action); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}

	job, err := op(c.Request.Context(), id)
	if err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Jobs.Snapshot().LastError})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job":     job,
		"actions": statemachine.ActionsFrom(job.Status),
	})
}

// EarningsView fetches the ledger and renders it with the derived totals.
func (ctrl *DriverController) EarningsView(c *gin.Context) {
	if err := ctrl.Earnings.FetchAll(c.Request.Context()); err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
	}

	snap := ctrl.Earnings.Snapshot()
	total, pending := ctrl.Earnings.Totals()
	c.JSON(http.StatusOK, gin.H{
		"earnings":        snap.Items,
		"totalEarnings":   total,
		"pendingEarnings": pending,
		"pending":         snap.Pending,
		"error":           snap.LastError,
	})
}

// Profile renders the driver profile for the signed-in principal.
func (ctrl *DriverController) Profile(c *gin.Context) {
	principal := requirePrincipal(c, ctrl.Sessions)
	if principal == nil {
		return
	}
	if err := ctrl.Drivers.FetchProfile(c.Request.Context(), principal.ID); err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Drivers.Snapshot().LastError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": ctrl.Drivers.Selected()})
}

// UpdateProfile applies profile changes and keeps the session principal's
// identity fields in step with the confirmed result.
func (ctrl *DriverController) UpdateProfile(c *gin.Context) {
	principal := requirePrincipal(c, ctrl.Sessions)
	if principal == nil {
		return
	}

	var changes map[string]any
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ctrl.Drivers.UpdateProfile(c.Request.Context(), principal.ID, changes)
	if err != nil {
		if abortForAuth(c, ctrl.Sessions, err) {
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": ctrl.Drivers.Snapshot().LastError})
		return
	}

	if profile.FullName != "" {
		principal.FullName = profile.FullName
	}
	if profile.Phone != "" {
		principal.Phone = profile.Phone
	}
	ctrl.Sessions.SetPrincipal(principal)

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
