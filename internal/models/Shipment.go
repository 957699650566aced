package models

import "time"

// Shipment status domain.
const (
	ShipmentPending   = "pending"
	ShipmentAssigned  = "assigned"
	ShipmentInTransit = "in_transit"
	ShipmentDelivered = "delivered"
	ShipmentCancelled = "cancelled"
)

// Shipment is the customer/admin-facing booking record. DriverID is a weak
// reference; the admin view joins it against the users collection when it
// needs the driver's name.
type Shipment struct {
	ID              string    `json:"_id"`
	TrackingNumber  string    `json:"tracking_number"`
	CustomerID      string    `json:"customer_id,omitempty"`
	DriverID        string    `json:"driver_id,omitempty"`
	Status          string    `json:"status"`
	PackageType     string    `json:"package_type"`
	Weight          Money     `json:"weight"`
	Description     string    `json:"description"`
	PickupAddress   string    `json:"pickup_address"`
	PickupCity      string    `json:"pickup_city"`
	PickupState     string    `json:"pickup_state"`
	DeliveryAddress string    `json:"delivery_address"`
	DeliveryCity    string    `json:"delivery_city"`
	DeliveryState   string    `json:"delivery_state"`
	ReceiverName    string    `json:"receiver_name"`
	ReceiverPhone   string    `json:"receiver_phone"`
	DeliveryDate    string    `json:"delivery_date,omitempty"`
	Price           Money     `json:"price"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

func (s Shipment) RecordID() string { return s.ID }
