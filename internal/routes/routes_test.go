package routes

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/controllers"
	"github.com/mighty-stack/swiftship/internal/credential"
	"github.com/mighty-stack/swiftship/internal/models"
	"github.com/mighty-stack/swiftship/internal/store"
)

type fixture struct {
	router    *gin.Engine
	sessions  *store.SessionStore
	creds     *credential.Store
	jobs      *store.JobStore
	shipments *store.ShipmentStore
}

func newFixture(t *testing.T, backend http.Handler) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	creds, err := credential.Open(filepath.Join(t.TempDir(), "cred.db"))
	require.NoError(t, err)
	client := api.New(srv.URL, creds, 5*time.Second)

	sessions := store.NewSessionStore(client, creds)
	jobs := store.NewJobStore(client)
	shipments := store.NewShipmentStore(client)
	earnings := store.NewEarningStore(client)
	users := store.NewUserStore(client)
	drivers := store.NewDriverStore(client)
	payments := store.NewPaymentStore(client)

	router := SetupRouter(Controllers{
		Sessions: sessions,
		Auth:     &controllers.AuthController{Sessions: sessions},
		Customer: &controllers.CustomerController{Sessions: sessions, Shipments: shipments, Payments: payments},
		Driver: &controllers.DriverController{
			Sessions: sessions,
			Jobs:     jobs,
			Earnings: earnings,
			Drivers:  drivers,
		},
		Admin: &controllers.AdminController{Sessions: sessions, Shipments: shipments, Users: users},
	})
	return &fixture{router: router, sessions: sessions, creds: creds, jobs: jobs, shipments: shipments}
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (f *fixture) put(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, path, nil))
	return w
}

func (f *fixture) post(path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	return w
}

func okBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
}

func TestRedirectInterstitialRoutesByRole(t *testing.T) {
	f := newFixture(t, okBackend())

	w := f.get("/redirect")
	assert.Equal(t, "/login", w.Header().Get("Location"))

	f.sessions.SetPrincipal(&models.User{ID: "u1", Role: models.RoleDriver})
	w = f.get("/redirect")
	assert.Equal(t, "/driver/dashboard", w.Header().Get("Location"))

	f.sessions.SetPrincipal(&models.User{ID: "u2", Role: models.RoleAdmin})
	w = f.get("/redirect")
	assert.Equal(t, "/customer/dashboard", w.Header().Get("Location"))
}

func TestBackendAuthFailureForcesLogout(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "token expired"}`))
	})
	f := newFixture(t, backend)
	require.NoError(t, f.creds.Save("stale-token"))
	f.sessions.SetPrincipal(&models.User{ID: "u1", Role: models.RoleDriver})

	w := f.get("/driver/dashboard")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.False(t, f.sessions.Snapshot().IsAuthenticated)
	assert.Empty(t, f.creds.Load(), "persisted token is cleared on 401")
}

func TestUnknownPathFallsBackHome(t *testing.T) {
	f := newFixture(t, okBackend())
	w := f.get("/no/such/view")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestDriverDashboardRendersBuckets(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"_id": "j1", "status": "assigned"},
			{"_id": "j2", "status": "in_progress"}
		]`))
	})
	f := newFixture(t, backend)
	f.sessions.SetPrincipal(&models.User{ID: "u1", Role: models.RoleDriver})

	w := f.get("/driver/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"assigned":1`)
	assert.Contains(t, w.Body.String(), `"current":1`)
	assert.Contains(t, w.Body.String(), `"completed":0`)
}

func TestDisallowedTransitionRejectedBeforeRoundTrip(t *testing.T) {
	var transitionCalls int
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			transitionCalls++
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id": "j1", "status": "delivered"}]`))
	})
	f := newFixture(t, backend)
	f.sessions.SetPrincipal(&models.User{ID: "u1", Role: models.RoleDriver})

	require.Equal(t, http.StatusOK, f.get("/driver/dashboard").Code)

	w := f.put("/driver/jobs/j1/accept")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "not allowed")
	assert.Zero(t, transitionCalls, "a transition the table forbids never leaves the process")
}

func TestUncachedJobTransitionReachesBackend(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPut {
			_, _ = w.Write([]byte(`{"_id": "j9", "status": "accepted"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	f := newFixture(t, backend)
	f.sessions.SetPrincipal(&models.User{ID: "u1", Role: models.RoleDriver})

	w := f.put("/driver/jobs/j9/accept")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted"`)
}

func TestDashboardClosesJobDetail(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/jobs/j1" {
			_, _ = w.Write([]byte(`{"_id": "j1", "status": "assigned"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	f := newFixture(t, backend)
	f.sessions.SetPrincipal(&models.User{ID: "u1", Role: models.RoleDriver})

	require.Equal(t, http.StatusOK, f.get("/driver/jobs/j1").Code)
	require.NotNil(t, f.jobs.Selected())

	require.Equal(t, http.StatusOK, f.get("/driver/dashboard").Code)
	assert.Nil(t, f.jobs.Selected(), "returning to the list closes the detail")
}

func TestBookShipmentOpensCheckout(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/shipments":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"_id": "s1", "status": "pending", "price": 2500}`))
		case "/payment/init":
			_, _ = w.Write([]byte(`{"authorization_url": "https://checkout.example/s1", "reference": "ref-s1"}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	f := newFixture(t, backend)
	f.sessions.SetPrincipal(&models.User{ID: "u2", Role: models.RoleCustomer, Email: "jane@swiftship.test"})

	w := f.post("/customer/book-shipment", `{"package_type": "standard", "weight": 2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "https://checkout.example/s1")
	assert.Contains(t, w.Body.String(), "ref-s1")
}

func TestBookShipmentPaymentFailureKeepsBooking(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/shipments":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"_id": "s1", "status": "pending", "price": 2500}`))
		case "/payment/init":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"message": "gateway unavailable"}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	f := newFixture(t, backend)
	f.sessions.SetPrincipal(&models.User{ID: "u2", Role: models.RoleCustomer, Email: "jane@swiftship.test"})

	w := f.post("/customer/book-shipment", `{"package_type": "standard", "weight": 2}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "gateway unavailable")
	assert.Len(t, f.shipments.Snapshot().Items, 1, "the booking survives an abandoned checkout")
}

func TestPaymentSuccessVerifiesReference(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/payment/verify/ref-s1" {
			_, _ = w.Write([]byte(`{"status": "success", "reference": "ref-s1"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	f := newFixture(t, backend)
	f.sessions.SetPrincipal(&models.User{ID: "u2", Role: models.RoleCustomer})

	w := f.get("/customer/payment-success")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment reference")

	w = f.get("/customer/payment-success?reference=ref-s1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success"`)
	assert.Contains(t, w.Body.String(), "/customer/dashboard")
}
