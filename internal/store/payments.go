package store

import (
	"context"
	"sync"

	"github.com/mighty-stack/swiftship/internal/api"
)

// PaymentSession is the checkout handle the payment gateway returns on init.
// The caller navigates to AuthorizationURL to complete payment and comes
// back with Reference for verification.
type PaymentSession struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference"`
}

// PaymentVerification is the gateway's verdict for a finished checkout.
type PaymentVerification struct {
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
}

// PaymentStore drives the booking payment leg: init a checkout session after
// a shipment is created, then verify the reference the gateway hands back.
// Payments are transient, so nothing is cached beyond the lifecycle flags.
type PaymentStore struct {
	api *api.Client

	mu        sync.Mutex
	pending   bool
	lastError string
}

func NewPaymentStore(client *api.Client) *PaymentStore {
	return &PaymentStore{api: client}
}

// PaymentSnapshot is the lifecycle state a view renders alongside a
// checkout.
type PaymentSnapshot struct {
	Pending   bool
	LastError string
}

func (s *PaymentStore) Snapshot() PaymentSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PaymentSnapshot{Pending: s.pending, LastError: s.lastError}
}

type paymentInitRequest struct {
	Email      string  `json:"email"`
	Amount     float64 `json:"amount"`
	ShipmentID string  `json:"shipmentId"`
}

// Init opens a checkout session for the shipment with the gateway.
func (s *PaymentStore) Init(ctx context.Context, email string, amount float64, shipmentID string) (PaymentSession, error) {
	s.begin()

	var session PaymentSession
	err := s.api.Post(ctx, "/payment/init", paymentInitRequest{
		Email:      email,
		Amount:     amount,
		ShipmentID: shipmentID,
	}, &session)
	if err != nil {
		s.reject(err, "Payment failed")
		return PaymentSession{}, err
	}

	s.fulfill()
	return session, nil
}

// Verify asks the gateway for the outcome of the checkout behind reference.
func (s *PaymentStore) Verify(ctx context.Context, reference string) (PaymentVerification, error) {
	s.begin()

	var verification PaymentVerification
	if err := s.api.Get(ctx, "/payment/verify/"+reference, &verification); err != nil {
		s.reject(err, "Payment verification failed")
		return PaymentVerification{}, err
	}

	s.fulfill()
	return verification, nil
}

func (s *PaymentStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = true
	s.lastError = ""
}

func (s *PaymentStore) reject(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	s.lastError = failureMessage(err, fallback)
}

func (s *PaymentStore) fulfill() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	s.lastError = ""
}
