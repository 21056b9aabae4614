package model

import "context"

// ContextManager stores and retrieves the authenticated user ID on a
// request context.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID ID) context.Context
	GetUserIDFromContext(ctx context.Context) (ID, bool)
}
