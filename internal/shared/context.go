package shared

import "context"

type (
	sessionContextKey struct{}
	clientContextKey  struct{}
)

// ContextWithSession stores the session in context.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext extracts the session from context.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*Session)
	return sess
}

// ContextWithClientID stores the long-lived browser identifier in context.
func ContextWithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientContextKey{}, id)
}

// ClientIDFromContext returns the browser identifier, or "" when absent.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clientContextKey{}).(string)
	return id
}
