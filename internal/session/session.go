// Package session owns the authenticated identity of the client process:
// the token, the user derived from its claims, and the validity window.
// Only this package mutates the token; the API gateway reads it through the
// TokenSource interface, and only in response to Login/Logout/Hydrate.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/danakir/planvite/internal/api"
	"github.com/danakir/planvite/internal/common"
	"github.com/danakir/planvite/internal/credstore"
	"github.com/danakir/planvite/internal/logging"
	"github.com/danakir/planvite/internal/models"
	"github.com/danakir/planvite/internal/notify"
)

// Claims is the token payload the backend issues: the user object in the
// subject claim plus the registered set. The embedded Subject string never
// populates; the outer field shadows its JSON tag.
type Claims struct {
	User models.User `json:"sub"`
	jwt.RegisteredClaims
}

// Manager is the single process-wide session. State transitions:
// Anonymous → Authenticated on Login or a successful Hydrate, back to
// Anonymous on Logout. Expiry is checked lazily at hydrate time only; a
// token expiring mid-session surfaces as a 401 on the next call, and the
// consuming layer is expected to call Logout then.
type Manager struct {
	api      api.Client
	store    credstore.Store
	notify   notify.Sink
	log      logging.Logger
	tokenTTL time.Duration
	now      func() time.Time

	onAuthChange func(authenticated bool)

	mu            sync.RWMutex
	hydrated      bool
	token         string
	user          models.User
	expiresAt     time.Time
	authenticated bool
}

// NewManager builds an anonymous session. tokenTTL is the durable-slot
// retention window applied on Login (independent of the token's exp claim).
func NewManager(apiClient api.Client, store credstore.Store, sink notify.Sink, log logging.Logger, tokenTTL time.Duration) *Manager {
	return &Manager{
		api:      apiClient,
		store:    store,
		notify:   sink,
		log:      log.With("component", "session"),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// SetAuthChangeListener registers the routing collaborator called on every
// Anonymous↔Authenticated transition with the new state.
func (m *Manager) SetAuthChangeListener(fn func(authenticated bool)) {
	m.onAuthChange = fn
}

// Token implements api.TokenSource. Empty while anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.authenticated
}

// User returns the authenticated identity, ok=false while anonymous.
func (m *Manager) User() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user, m.authenticated
}

// ExpiresAt returns the token expiry known at the last check.
func (m *Manager) ExpiresAt() (time.Time, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.expiresAt, m.authenticated
}

// decodeToken extracts claims without verifying the signature: the client
// holds no signing key, and the server re-validates the token on every call.
func decodeToken(token string, now time.Time) (models.User, time.Time, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return models.User{}, time.Time{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return models.User{}, time.Time{}, fmt.Errorf("%w: missing exp claim", common.ErrInvalidToken)
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return models.User{}, time.Time{}, common.ErrTokenExpired
	}
	return claims.User, claims.ExpiresAt.Time, nil
}

// Hydrate recovers the session from the durable slot without contacting the
// server. Runs at most once per process; repeated calls are no-ops. An
// expired or undecodable stored token is erased and the session stays
// anonymous; that is a normal outcome, not an error.
func (m *Manager) Hydrate(ctx context.Context) error {
	m.mu.Lock()
	if m.hydrated {
		m.mu.Unlock()
		return nil
	}
	m.hydrated = true
	m.mu.Unlock()

	token, ok, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stored credential: %w", err)
	}
	if !ok {
		return nil
	}

	user, expiresAt, err := decodeToken(token, m.now())
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			m.log.Info(ctx, "stored token expired, erasing")
		} else {
			m.log.Warn(ctx, "stored token undecodable, erasing", "error", err)
		}
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.log.Warn(ctx, "failed to erase stored token", "error", clearErr)
		}
		return nil
	}

	m.setAuthenticated(token, user, expiresAt)
	m.log.Info(ctx, "session hydrated", "user", user.Email)
	return nil
}

// Login exchanges credentials for a token, persists it with the configured
// retention window, and transitions to Authenticated. On failure the session
// state is left untouched and the server's message is surfaced.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) error {
	token, err := m.api.Login(ctx, creds)
	if err != nil {
		m.notify.Error(failureMessage(err, "Login failed"))
		return err
	}

	user, expiresAt, err := decodeToken(token, m.now())
	if err != nil {
		m.notify.Error("Login failed")
		return fmt.Errorf("decode issued token: %w", err)
	}

	if err := m.store.Save(ctx, token, m.now().Add(m.tokenTTL)); err != nil {
		// The in-memory session still works for this process; only restart
		// recovery is lost.
		m.log.Warn(ctx, "failed to persist token", "error", err)
	}

	m.setAuthenticated(token, user, expiresAt)
	m.notify.Success("Welcome back!")
	return nil
}

// Register creates an account. It never authenticates by itself; the caller
// must Login afterwards.
func (m *Manager) Register(ctx context.Context, creds models.Credentials) error {
	if err := m.api.Register(ctx, creds); err != nil {
		m.notify.Error(failureMessage(err, "Registration failed"))
		return err
	}
	m.notify.Success("Registration successful! Please log in.")
	return nil
}

// Logout clears the durable slot and resets the session unconditionally.
// Safe to call while already anonymous.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear stored credential", "error", err)
	}

	m.mu.Lock()
	wasAuthenticated := m.authenticated
	m.token = ""
	m.user = models.User{}
	m.expiresAt = time.Time{}
	m.authenticated = false
	m.mu.Unlock()

	m.notify.Success("Logged out successfully")
	if wasAuthenticated && m.onAuthChange != nil {
		m.onAuthChange(false)
	}
}

func (m *Manager) setAuthenticated(token string, user models.User, expiresAt time.Time) {
	m.mu.Lock()
	wasAuthenticated := m.authenticated
	m.token = token
	m.user = user
	m.expiresAt = expiresAt
	m.authenticated = true
	m.mu.Unlock()

	if !wasAuthenticated && m.onAuthChange != nil {
		m.onAuthChange(true)
	}
}

// failureMessage prefers the server-provided message over the fallback.
func failureMessage(err error, fallback string) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode != 0 && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
