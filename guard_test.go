package directory_test

import (
	"context"
	"testing"

	directory "github.com/goliatone/go-directory"
	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
)

func TestCombine_ShortCircuits(t *testing.T) {
	invoked := false
	handler := func(ctx context.Context, _ directory.NoArgs) (string, error) {
		invoked = true
		return "result", nil
	}

	guarded := directory.Combine(handler, directory.Authenticated)

	out, err := guarded(context.Background(), directory.NoArgs{})
	assert.ErrorIs(t, err, directory.ErrNotAuthenticated)
	assert.Empty(t, out)
	assert.False(t, invoked, "handler must not run when the guard fails")
}

func TestCombine_PassesThrough(t *testing.T) {
	handler := func(ctx context.Context, _ directory.NoArgs) (string, error) {
		return "result", nil
	}

	guarded := directory.Combine(handler, directory.Authenticated)

	ctx := directory.WithIdentity(context.Background(), testIdentity{id: "user-123", role: "USER"})
	out, err := guarded(ctx, directory.NoArgs{})
	assert.NoError(t, err)
	assert.Equal(t, "result", out)
}

func TestCombine_GuardOrder(t *testing.T) {
	var order []string
	first := func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	}
	second := func(ctx context.Context) error {
		order = append(order, "second")
		return errors.New("second rejects", errors.CategoryAuthz)
	}
	third := func(ctx context.Context) error {
		order = append(order, "third")
		return nil
	}

	handler := func(ctx context.Context, _ directory.NoArgs) (int, error) {
		order = append(order, "handler")
		return 42, nil
	}

	guarded := directory.Combine(handler, first, second, third)

	out, err := guarded(context.Background(), directory.NoArgs{})
	assert.Error(t, err)
	assert.Zero(t, out)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRequireRole(t *testing.T) {
	guard := directory.RequireRole(directory.RoleAdmin)

	t.Run("rejects without identity", func(t *testing.T) {
		err := guard(context.Background())
		assert.ErrorIs(t, err, directory.ErrNotAuthenticated)
	})

	t.Run("rejects a lower role", func(t *testing.T) {
		ctx := directory.WithIdentity(context.Background(), testIdentity{id: "u1", role: "USER"})
		err := guard(ctx)
		assert.ErrorIs(t, err, directory.ErrNotAuthorized)
	})

	t.Run("passes an admin", func(t *testing.T) {
		ctx := directory.WithIdentity(context.Background(), testIdentity{id: "u1", role: "ADMIN"})
		assert.NoError(t, guard(ctx))
	})
}
