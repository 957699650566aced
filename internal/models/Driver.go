package models

import "time"

// Driver is the driver-facing profile behind /drivers/:id. It extends the
// base user account with vehicle and license details; email and role stay on
// the User record.
type Driver struct {
	ID            string    `json:"_id"`
	UserID        string    `json:"user_id"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"license_number"`
	VehicleType   string    `json:"vehicle_type"`
	VehicleRegNo  string    `json:"vehicle_registration"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

func (d Driver) RecordID() string { return d.ID }
