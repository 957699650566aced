package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProfileSelectsWithoutListing(t *testing.T) {
	client, _ := testClient(t, jsonHandler(http.StatusOK, `{
		"_id": "d1", "user_id": "u42", "full_name": "Dana",
		"license_number": "DL-9", "vehicle_type": "van"
	}`))
	drivers := NewDriverStore(client)

	require.NoError(t, drivers.FetchProfile(context.Background(), "u42"))

	snap := drivers.Snapshot()
	assert.Empty(t, snap.Items)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "u42", snap.Selected.UserID)
	assert.Equal(t, "DL-9", snap.Selected.LicenseNumber)
}

func TestUpdateProfileReselectsResult(t *testing.T) {
	backend := &switchableHandler{handler: jsonHandler(http.StatusOK, `{
		"_id": "d1", "user_id": "u42", "full_name": "Dana", "phone": "111"
	}`)}
	client, _ := testClient(t, backend)
	drivers := NewDriverStore(client)
	require.NoError(t, drivers.FetchProfile(context.Background(), "u42"))

	backend.handler = jsonHandler(http.StatusOK, `{
		"_id": "d1", "user_id": "u42", "full_name": "Dana", "phone": "222"
	}`)
	profile, err := drivers.UpdateProfile(context.Background(), "u42", map[string]any{"phone": "222"})
	require.NoError(t, err)
	assert.Equal(t, "222", profile.Phone)

	require.NotNil(t, drivers.Selected())
	assert.Equal(t, "222", drivers.Selected().Phone)
}

func TestUpdateProfileRejectionKeepsSelection(t *testing.T) {
	backend := &switchableHandler{handler: jsonHandler(http.StatusOK, `{
		"_id": "d1", "user_id": "u42", "phone": "111"
	}`)}
	client, _ := testClient(t, backend)
	drivers := NewDriverStore(client)
	require.NoError(t, drivers.FetchProfile(context.Background(), "u42"))

	backend.handler = jsonHandler(http.StatusBadRequest, `{"message": "invalid phone"}`)
	_, err := drivers.UpdateProfile(context.Background(), "u42", map[string]any{"phone": "x"})
	require.Error(t, err)

	snap := drivers.Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "111", snap.Selected.Phone)
	assert.Equal(t, "invalid phone", snap.LastError)
}
