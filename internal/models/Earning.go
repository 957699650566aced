package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Earning payout status.
const (
	EarningPending = "pending"
	EarningPaid    = "paid"
)

// Earning is an immutable ledger entry created by the backend when a job
// completes. Totals are never stored here; the earnings store derives them
// from the fetched set.
type Earning struct {
	ID        string     `json:"_id"`
	JobID     string     `json:"jobId"`
	Amount    Money      `json:"amount"`
	Status    string     `json:"status"`
	Type      string     `json:"type"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

func (e Earning) RecordID() string { return e.ID }

// Money is a float64 that decodes leniently: missing, null, or non-numeric
// amounts coerce to zero instead of failing the whole payload.
type Money float64

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			*m = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			*m = 0
			return nil
		}
		*m = Money(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*m = 0
		return nil
	}
	*m = Money(v)
	return nil
}
