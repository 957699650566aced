package store

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	logrus "github.com/sirupsen/logrus"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/credential"
	"github.com/mighty-stack/swiftship/internal/models"
)

// SessionSnapshot is the session state a view renders. IsAuthenticated holds
// exactly when Principal is present.
type SessionSnapshot struct {
	Principal       *models.User
	IsAuthenticated bool
	Pending         bool
	LastError       string
}

// SessionStore holds the authenticated principal and drives the auth
// operations. The invariant "authenticated iff a principal is present" is
// maintained by every mutation, including restore from a persisted token.
type SessionStore struct {
	api   *api.Client
	creds *credential.Store

	mu        sync.Mutex
	principal *models.User
	pending   bool
	lastError string
}

// NewSessionStore builds the session for this process. When a previous run
// persisted a credential token, the principal is restored from its claims;
// an expired or undecodable token is discarded and the session starts
// signed out.
func NewSessionStore(client *api.Client, creds *credential.Store) *SessionStore {
	s := &SessionStore{api: client, creds: creds}
	s.restore()
	return s
}

func (s *SessionStore) restore() {
	tok := s.creds.Load()
	if tok == "" {
		return
	}

	principal, err := principalFromToken(tok)
	if err != nil {
		logrus.WithError(err).Warn("discarding persisted credential token")
		s.creds.Clear()
		return
	}
	s.principal = principal
}

// principalFromToken rebuilds the principal from the token claims. The
// client never holds the signing key, so the claims are decoded unverified;
// the backend re-checks the signature on every request anyway.
func principalFromToken(tok string) (*models.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil, err
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return nil, jwt.ErrTokenExpired
	}

	principal := &models.User{
		ID:       claimString(claims, "user_id"),
		Role:     claimString(claims, "role"),
		Email:    claimString(claims, "email"),
		FullName: claimString(claims, "full_name"),
	}
	if principal.ID == "" || principal.Role == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return principal, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type registerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new account. On success the returned token is persisted
// and the principal is installed; on failure the previous principal is left
// alone and the error is surfaced.
func (s *SessionStore) SignUp(ctx context.Context, fullName, email, password, phone string) error {
	s.begin()

	var resp authResponse
	err := s.api.Post(ctx, "/auth/register", registerRequest{
		FullName: fullName,
		Email:    email,
		Password: password,
		Phone:    phone,
	}, &resp)
	if err != nil {
		s.rejectAuth(err, "Registration failed", false)
		return err
	}

	s.fulfill(resp)
	return nil
}

// SignIn authenticates an existing account. A rejection additionally forces
// the session signed out, covering a stale token left by a previous partial
// session.
func (s *SessionStore) SignIn(ctx context.Context, email, password string) error {
	s.begin()

	var resp authResponse
	err := s.api.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		s.rejectAuth(err, "Invalid credentials", true)
		return err
	}

	s.fulfill(resp)
	return nil
}

// SignOut clears the persisted token and resets the session. It is a
// local-only cleanup with no failure path.
func (s *SessionStore) SignOut() {
	s.creds.Clear()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = nil
	s.pending = false
	s.lastError = ""
}

// Invalidate is SignOut under another name, used when a view observes a
// 401/403 from the backend.
func (s *SessionStore) Invalidate() {
	s.SignOut()
}

// SetPrincipal overrides the principal after an out-of-band identity
// confirmation (e.g. a profile edit). Authentication is recomputed from
// presence.
func (s *SessionStore) SetPrincipal(principal *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if principal == nil {
		s.principal = nil
		return
	}
	p := *principal
	s.principal = &p
}

// Snapshot returns a copy of the session state.
func (s *SessionStore) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{
		IsAuthenticated: s.principal != nil,
		Pending:         s.pending,
		LastError:       s.lastError,
	}
	if s.principal != nil {
		p := *s.principal
		snap.Principal = &p
	}
	return snap
}

// Principal returns the current principal, or nil when signed out.
func (s *SessionStore) Principal() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return nil
	}
	p := *s.principal
	return &p
}

func (s *SessionStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = true
	s.lastError = ""
}

func (s *SessionStore) rejectAuth(err error, fallback string, invalidate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	s.lastError = failureMessage(err, fallback)
	if invalidate {
		// Dropping the principal keeps "authenticated iff present" intact.
		s.principal = nil
	}
}

func (s *SessionStore) fulfill(resp authResponse) {
	if resp.Token != "" {
		if err := s.creds.Save(resp.Token); err != nil {
			logrus.WithError(err).Warn("session continues in-memory only")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	s.lastError = ""
	user := resp.User
	s.principal = &user
}
