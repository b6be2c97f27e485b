package auth

import "context"

// contextKey is a private type for context keys, preventing collisions with
// keys set by other packages.
type contextKey string

const principalContextKey contextKey = "auth_principal"

// NewContextWithPrincipal returns a child context carrying the resolved
// principal. Set by the RequireAuth middleware once per request.
func NewContextWithPrincipal(ctx context.Context, principal *User) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// PrincipalFromContext extracts the authenticated principal from the
// context. The second return value is false when the request did not pass
// through RequireAuth.
func PrincipalFromContext(ctx context.Context) (*User, bool) {
	principal, ok := ctx.Value(principalContextKey).(*User)
	return principal, ok
}
