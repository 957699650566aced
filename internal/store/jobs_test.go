package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mighty-stack/swiftship/internal/models"
)

func TestAcceptSetsStatusAndTimestamp(t *testing.T) {
	backend := &switchableHandler{handler: jsonHandler(http.StatusOK, `[
		{"_id": "j1", "status": "assigned", "payment_amount": 45.5}
	]`)}
	client, _ := testClient(t, backend)
	jobs := NewJobStore(client)
	require.NoError(t, jobs.FetchAll(context.Background()))

	backend.handler = jsonHandler(http.StatusOK, `{
		"_id": "j1", "status": "accepted", "payment_amount": 45.5,
		"acceptedAt": "2026-08-30T10:00:00Z"
	}`)
	job, err := jobs.Accept(context.Background(), "j1")
	require.NoError(t, err)

	assert.Equal(t, models.JobAccepted, job.Status)
	require.NotNil(t, job.AcceptedAt)

	snap := jobs.Snapshot()
	assert.Equal(t, models.JobAccepted, snap.Items[0].Status)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "j1", snap.Selected.ID)
}

func TestSecondAcceptRejectionLeavesStoreIntact(t *testing.T) {
	backend := &switchableHandler{handler: jsonHandler(http.StatusOK, `[
		{"_id": "j1", "status": "accepted", "acceptedAt": "2026-08-30T10:00:00Z"}
	]`)}
	client, _ := testClient(t, backend)
	jobs := NewJobStore(client)
	require.NoError(t, jobs.FetchAll(context.Background()))

	// The backend owns the transition policy and refuses a repeat accept.
	backend.handler = jsonHandler(http.StatusBadRequest, `{"message": "job is not assigned"}`)
	_, err := jobs.Accept(context.Background(), "j1")
	require.Error(t, err)

	snap := jobs.Snapshot()
	assert.Equal(t, models.JobAccepted, snap.Items[0].Status)
	assert.Equal(t, "job is not assigned", snap.LastError)
	assert.False(t, snap.Pending)
}

func TestStartAndCompleteReplaceInPlace(t *testing.T) {
	backend := &switchableHandler{handler: jsonHandler(http.StatusOK, `[
		{"_id": "j1", "status": "accepted"},
		{"_id": "j2", "status": "delivered"}
	]`)}
	client, _ := testClient(t, backend)
	jobs := NewJobStore(client)
	require.NoError(t, jobs.FetchAll(context.Background()))

	backend.handler = jsonHandler(http.StatusOK, `{"_id": "j1", "status": "in_progress", "startedAt": "2026-08-30T11:00:00Z"}`)
	job, err := jobs.Start(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobInProgress, job.Status)

	backend.handler = jsonHandler(http.StatusOK, `{"_id": "j1", "status": "delivered", "deliveredAt": "2026-08-30T12:00:00Z"}`)
	job, err = jobs.Complete(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobDelivered, job.Status)
	require.NotNil(t, job.DeliveredAt)

	snap := jobs.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, models.JobDelivered, snap.Items[0].Status)
	assert.Equal(t, "j2", snap.Items[1].ID)
}

func TestCachedStatusChecksSelectionAndList(t *testing.T) {
	client, _ := testClient(t, jsonHandler(http.StatusOK, `{"_id": "j9", "status": "accepted"}`))
	jobs := NewJobStore(client)

	_, ok := jobs.CachedStatus("j9")
	assert.False(t, ok, "a job the cache never saw has no status to report")

	require.NoError(t, jobs.FetchOne(context.Background(), "j9"))
	status, ok := jobs.CachedStatus("j9")
	require.True(t, ok)
	assert.Equal(t, models.JobAccepted, status)
}
