package store

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/credential"
)

func testCreds(t *testing.T) *credential.Store {
	t.Helper()
	creds, err := credential.Open(filepath.Join(t.TempDir(), "cred.db"))
	require.NoError(t, err)
	return creds
}

func testClient(t *testing.T, handler http.Handler) (*api.Client, *credential.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	creds := testCreds(t)
	return api.New(srv.URL, creds, 5*time.Second), creds
}

// newUnreachableClient targets a port nothing listens on, for transport
// failure paths.
func newUnreachableClient(creds *credential.Store) *api.Client {
	return api.New("http://127.0.0.1:1", creds, time.Second)
}

// jsonHandler answers every request with the given status and raw body.
func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}
