package store

import (
	"context"
	"net/http"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/models"
)

// DriverStore caches the driver profile behind /drivers/:id. It is
// profile-shaped: the selection carries the profile being viewed and the
// items stay empty unless a list view ever needs them.
type DriverStore struct {
	*Collection[models.Driver]
}

func NewDriverStore(client *api.Client) *DriverStore {
	return &DriverStore{Collection: newCollection[models.Driver](client, "drivers")}
}

// FetchProfile loads the profile for the given driver user id into the
// selection.
func (s *DriverStore) FetchProfile(ctx context.Context, userID string) error {
	return s.fetchOne(ctx, "/drivers/"+userID, "Failed to fetch profile")
}

// UpdateProfile applies profile changes and reselects the result.
func (s *DriverStore) UpdateProfile(ctx context.Context, userID string, changes map[string]any) (models.Driver, error) {
	return s.apply(ctx, http.MethodPut, "/drivers/"+userID, changes, false, "Failed to update profile")
}
