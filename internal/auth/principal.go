package auth

import (
	"context"

	"seismic-catalog/internal/domain/user"
)

// Principal is the verified caller of a request.
type Principal struct {
	ID   string
	Role user.Role
	Name string
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
