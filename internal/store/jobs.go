package store

import (
	"context"
	"net/http"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/models"
)

// JobStore caches the driver's delivery jobs. Transition results replace the
// matching job in place; a job the cache has never seen is not inserted.
type JobStore struct {
	*Collection[models.Job]
}

func NewJobStore(client *api.Client) *JobStore {
	return &JobStore{Collection: newCollection[models.Job](client, "jobs")}
}

func (s *JobStore) FetchAll(ctx context.Context) error {
	return s.fetchAll(ctx, "/jobs", "Failed to fetch jobs")
}

func (s *JobStore) FetchOne(ctx context.Context, id string) error {
	return s.fetchOne(ctx, "/jobs/"+id, "Failed to fetch job")
}

// CachedStatus returns the job's status as last observed, checking the
// selection and the cached list. ok is false when the job was never cached;
// the caller then has nothing to pre-validate against.
func (s *JobStore) CachedStatus(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected != nil && s.selected.ID == id {
		return s.selected.Status, true
	}
	for i := range s.items {
		if s.items[i].ID == id {
			return s.items[i].Status, true
		}
	}
	return "", false
}

// Accept moves an assigned job to accepted.
func (s *JobStore) Accept(ctx context.Context, id string) (models.Job, error) {
	return s.apply(ctx, http.MethodPut, "/jobs/"+id+"/accept", nil, false, "Failed to accept job")
}

// Start moves an accepted job to in_progress.
func (s *JobStore) Start(ctx context.Context, id string) (models.Job, error) {
	return s.apply(ctx, http.MethodPut, "/jobs/"+id+"/start", nil, false, "Failed to start job")
}

// Complete moves an in_progress job to delivered. The backend also writes
// the matching earning record.
func (s *JobStore) Complete(ctx context.Context, id string) (models.Job, error) {
	return s.apply(ctx, http.MethodPut, "/jobs/"+id+"/complete", nil, false, "Failed to complete job")
}
