package models

import "time"

// Job status domain. Transitions only move forward:
// assigned -> accepted -> in_progress -> delivered.
const (
	JobAssigned   = "assigned"
	JobAccepted   = "accepted"
	JobInProgress = "in_progress"
	JobDelivered  = "delivered"
)

// Job is a driver-facing delivery assignment. Each transition timestamp is
// written once, server-side, when the corresponding transition succeeds.
type Job struct {
	ID                 string     `json:"_id"`
	ShipmentID         string     `json:"shipment_id,omitempty"`
	Status             string     `json:"status"`
	PaymentAmount      Money      `json:"payment_amount"`
	PickupAddress      string     `json:"pickup_address"`
	DeliveryAddress    string     `json:"delivery_address"`
	PackageDescription string     `json:"package_description"`
	ReceiverName       string     `json:"receiver_name,omitempty"`
	ReceiverPhone      string     `json:"receiver_phone,omitempty"`
	AcceptedAt         *time.Time `json:"acceptedAt,omitempty"`
	StartedAt          *time.Time `json:"startedAt,omitempty"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt,omitempty"`
}

func (j Job) RecordID() string { return j.ID }
