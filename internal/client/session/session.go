// Package session owns the client's authentication state: the token,
// the profile behind it, and the rules for restoring both on startup.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell-app/inkwell-server/internal/client/api"
)

// ProfileFetcher resolves the profile behind the current token.
type ProfileFetcher interface {
	Me(ctx context.Context) (api.User, error)
}

// Session holds the authentication state. All state transitions are
// atomic: the token and user change together or not at all.
type Session struct {
	mu    sync.RWMutex
	store TokenStore
	token string
	user  *api.User
}

// New creates a Session backed by store. The session starts
// unauthenticated; call Hydrate to restore a persisted token.
func New(store TokenStore) *Session {
	return &Session{store: store}
}

// Token returns the current token, or an empty string when the session
// is unauthenticated. Suitable as the token supplier for api.New.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a validated token and profile are held.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// CurrentUser returns the profile behind the session, or nil when
// unauthenticated.
func (s *Session) CurrentUser() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// SetAuthenticated installs a token and its profile in one step and
// persists the token.
func (s *Session) SetAuthenticated(token string, user api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	s.user = &user
	return nil
}

// Clear drops the token and profile and removes the persisted token.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	return s.store.Clear()
}

// Hydrate restores the session from the persisted token. The token's
// expiry claim is checked locally first; a live token is confirmed
// against the API so the profile is known. Any failure along the way
// leaves the session cleanly unauthenticated.
func (s *Session) Hydrate(ctx context.Context, fetcher ProfileFetcher) error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	if expired(token, time.Now()) {
		return s.Clear()
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	user, err := fetcher.Me(ctx)
	if err != nil {
		if clearErr := s.Clear(); clearErr != nil {
			return clearErr
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// expired reads the exp claim without verifying the signature. The
// server remains the authority; this only avoids a doomed round trip.
// Tokens that cannot be parsed are treated as expired.
func expired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return !now.Before(claims.ExpiresAt.Time)
}
