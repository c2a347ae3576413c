package directory

import "context"

// Guard is a pre-execution check over the request context. A guard either
// passes (nil) or rejects the request before its handler runs.
type Guard func(ctx context.Context) error

// HandlerFunc is the shape of a query or mutation body.
type HandlerFunc[A, T any] func(ctx context.Context, args A) (T, error)

// NoArgs is the argument type for operations that take none.
type NoArgs struct{}

// Combine chains guards in front of a handler. Guards run left to right;
// the first failure short-circuits and the handler never executes.
func Combine[A, T any](handler HandlerFunc[A, T], guards ...Guard) HandlerFunc[A, T] {
	return func(ctx context.Context, args A) (T, error) {
		for _, guard := range guards {
			if err := guard(ctx); err != nil {
				var zero T
				return zero, err
			}
		}
		return handler(ctx, args)
	}
}

// Authenticated rejects requests that carry no identity
func Authenticated(ctx context.Context) error {
	if _, ok := IdentityFromContext(ctx); !ok {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireRole builds a guard that rejects identities below minRole. It
// chains after Authenticated-style checks without changing handler
// signatures.
func RequireRole(minRole UserRole) Guard {
	return func(ctx context.Context) error {
		identity, ok := IdentityFromContext(ctx)
		if !ok {
			return ErrNotAuthenticated
		}
		if !UserRole(identity.Role()).IsAtLeast(minRole) {
			return ErrNotAuthorized
		}
		return nil
	}
}
