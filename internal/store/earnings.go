package store

import (
	"context"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/models"
)

// EarningStore caches the driver's earnings ledger. The aggregate totals are
// derived, never stored authoritatively: every successful fetch recomputes
// them from the full item set.
type EarningStore struct {
	*Collection[models.Earning]

	// guarded by the collection mutex via onReplace
	totalAmount   float64
	pendingAmount float64
}

func NewEarningStore(client *api.Client) *EarningStore {
	s := &EarningStore{}
	s.Collection = newCollection[models.Earning](client, "earnings")
	s.Collection.onReplace = func(items []models.Earning) {
		s.totalAmount, s.pendingAmount = sumEarnings(items)
	}
	return s
}

func (s *EarningStore) FetchAll(ctx context.Context) error {
	return s.fetchAll(ctx, "/earnings", "Failed to fetch earnings")
}

// Totals returns the derived aggregates from the last successful fetch.
func (s *EarningStore) Totals() (total, pending float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalAmount, s.pendingAmount
}

func sumEarnings(items []models.Earning) (total, pending float64) {
	for _, e := range items {
		total += float64(e.Amount)
		if e.Status == models.EarningPending {
			pending += float64(e.Amount)
		}
	}
	return total, pending
}
