package store

import (
	"context"
	"net/http"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/models"
)

// ShipmentStore caches shipments for the customer and admin views. Newly
// booked shipments are prepended so the freshest booking renders first;
// updates replace in place.
type ShipmentStore struct {
	*Collection[models.Shipment]
}

func NewShipmentStore(client *api.Client) *ShipmentStore {
	return &ShipmentStore{Collection: newCollection[models.Shipment](client, "shipments")}
}

// BookingRequest is the payload for booking a new shipment.
type BookingRequest struct {
	PackageType     string  `json:"package_type"`
	Weight          float64 `json:"weight"`
	Description     string  `json:"description"`
	PickupAddress   string  `json:"pickup_address"`
	PickupCity      string  `json:"pickup_city"`
	PickupState     string  `json:"pickup_state"`
	DeliveryAddress string  `json:"delivery_address"`
	DeliveryCity    string  `json:"delivery_city"`
	DeliveryState   string  `json:"delivery_state"`
	ReceiverName    string  `json:"receiver_name"`
	ReceiverPhone   string  `json:"receiver_phone"`
	DeliveryDate    string  `json:"delivery_date,omitempty"`
}

func (s *ShipmentStore) FetchAll(ctx context.Context) error {
	return s.fetchAll(ctx, "/shipments", "Failed to fetch shipments")
}

func (s *ShipmentStore) FetchOne(ctx context.Context, id string) error {
	return s.fetchOne(ctx, "/shipments/"+id, "Failed to fetch shipment")
}

// Create books a new shipment and prepends it to the cached items.
func (s *ShipmentStore) Create(ctx context.Context, booking BookingRequest) (models.Shipment, error) {
	return s.apply(ctx, http.MethodPost, "/shipments", booking, true, "Failed to add shipment")
}

// Update applies field changes to an existing shipment.
func (s *ShipmentStore) Update(ctx context.Context, id string, changes map[string]any) (models.Shipment, error) {
	return s.apply(ctx, http.MethodPut, "/shipments/"+id, changes, false, "Failed to update shipment")
}

// AssignDriver attaches a driver to the shipment by id.
func (s *ShipmentStore) AssignDriver(ctx context.Context, id, driverID string) (models.Shipment, error) {
	body := map[string]string{"driverId": driverID}
	return s.apply(ctx, http.MethodPut, "/shipments/"+id+"/assign-driver", body, false, "Failed to assign driver")
}
