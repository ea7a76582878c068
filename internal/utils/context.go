// Package utils holds the small helpers shared by the sync server and the
// client: request-scoped values, body signing, JSON over HTTP, the resty
// client, JWT handling and id generation.
package utils

import "context"

type ctxKey int

const userIDKey ctxKey = iota

// WithUserID returns a child of ctx carrying the authenticated owner of the
// request.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext reports the id stored by WithUserID.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
