package store

import (
	"context"
	"net/http"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/models"
)

// UserStore caches the admin-managed accounts. Updates replace in place
// only; deletion drops the matching record and leaves the selection alone.
type UserStore struct {
	*Collection[models.User]
}

func NewUserStore(client *api.Client) *UserStore {
	return &UserStore{Collection: newCollection[models.User](client, "users")}
}

func (s *UserStore) FetchAll(ctx context.Context) error {
	return s.fetchAll(ctx, "/admin/users", "Failed to fetch users")
}

// Update applies field changes (role, status, contact details) to a user.
func (s *UserStore) Update(ctx context.Context, id string, changes map[string]any) (models.User, error) {
	return s.apply(ctx, http.MethodPut, "/admin/users/"+id, changes, false, "Failed to update user")
}

// Delete removes the account server-side and from the cached items.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, "/admin/users/"+id, id, "Failed to delete user")
}
