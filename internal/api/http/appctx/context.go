// Package appctx stores the authenticated user ID on request contexts.
package appctx

import (
	"context"

	"github.com/inkwell-app/inkwell-server/internal/model"
)

type userIDKey struct{}

// Manager implements model.ContextManager over plain context values.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a child context carrying the user ID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID model.ID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext retrieves the user ID set by the authentication
// middleware, reporting false when the request is unauthenticated.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (model.ID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(model.ID)
	if !ok || userID.IsZero() {
		return "", false
	}
	return userID, true
}
