// Package selectors holds the pure functions that compute dashboard
// aggregates from store snapshots. They are synchronous, allocation-light,
// and safe to re-run on every render.
package selectors

import (
	"github.com/mighty-stack/swiftship/internal/models"
)

// JobBuckets partitions a job collection for the driver dashboard.
type JobBuckets struct {
	Assigned  []models.Job
	Current   []models.Job // accepted + in_progress
	Completed []models.Job
}

// PartitionJobs splits jobs into the three dashboard buckets.
func PartitionJobs(jobs []models.Job) JobBuckets {
	var b JobBuckets
	for _, j := range jobs {
		switch j.Status {
		case models.JobAssigned:
			b.Assigned = append(b.Assigned, j)
		case models.JobAccepted, models.JobInProgress:
			b.Current = append(b.Current, j)
		case models.JobDelivered:
			b.Completed = append(b.Completed, j)
		}
	}
	return b
}

// CountShipmentsByStatus tallies shipments per status.
func CountShipmentsByStatus(shipments []models.Shipment) map[string]int {
	counts := make(map[string]int)
	for _, s := range shipments {
		counts[s.Status]++
	}
	return counts
}

// FilterShipmentsByStatus returns the shipments currently in status.
func FilterShipmentsByStatus(shipments []models.Shipment, status string) []models.Shipment {
	var out []models.Shipment
	for _, s := range shipments {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}

// CountUsersByRole tallies accounts per role for the admin dashboard.
func CountUsersByRole(users []models.User) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		counts[u.Role]++
	}
	return counts
}

// DeliveredRevenue sums the price of delivered shipments.
func DeliveredRevenue(shipments []models.Shipment) float64 {
	var total float64
	for _, s := range shipments {
		if s.Status == models.ShipmentDelivered {
			total += float64(s.Price)
		}
	}
	return total
}

// Presentation tags for status badges, mirroring the dashboard's bootstrap
// palette. Unknown values fall back to the tag of the collection's initial
// status.
const badgeFallback = "secondary"

var shipmentBadges = map[string]string{
	models.ShipmentPending:   "secondary",
	models.ShipmentAssigned:  "info",
	models.ShipmentInTransit: "warning",
	models.ShipmentDelivered: "success",
	models.ShipmentCancelled: "danger",
}

var jobBadges = map[string]string{
	models.JobAssigned:   "info",
	models.JobAccepted:   "primary",
	models.JobInProgress: "warning",
	models.JobDelivered:  "success",
}

var userStatusBadges = map[string]string{
	models.UserActive:    "success",
	models.UserInactive:  "secondary",
	models.UserSuspended: "danger",
}

var roleBadges = map[string]string{
	models.RoleAdmin:    "danger",
	models.RoleDriver:   "warning",
	models.RoleCustomer: "info",
}

var earningBadges = map[string]string{
	models.EarningPending: "warning",
	models.EarningPaid:    "success",
}

func ShipmentStatusBadge(status string) string {
	if tag, ok := shipmentBadges[status]; ok {
		return tag
	}
	return shipmentBadges[models.ShipmentPending]
}

func JobStatusBadge(status string) string {
	if tag, ok := jobBadges[status]; ok {
		return tag
	}
	return jobBadges[models.JobAssigned]
}

func UserStatusBadge(status string) string {
	if tag, ok := userStatusBadges[status]; ok {
		return tag
	}
	return badgeFallback
}

func RoleBadge(role string) string {
	if tag, ok := roleBadges[role]; ok {
		return tag
	}
	return badgeFallback
}

func EarningStatusBadge(status string) string {
	if tag, ok := earningBadges[status]; ok {
		return tag
	}
	return earningBadges[models.EarningPending]
}
