package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caatpension/pension-api/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry_ActivateDeactivate(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	require.NoError(t, reg.Activate(ctx, "tok-1", time.Minute))

	ok, err := reg.IsActive(ctx, "tok-1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, reg.Deactivate(ctx, "tok-1"))

	ok, err = reg.IsActive(ctx, "tok-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryRegistry_DeactivateAbsent(t *testing.T) {
	reg := NewMemoryRegistry()
	err := reg.Deactivate(context.Background(), "never-seen")
	require.True(t, errors.Is(err, domain.ErrNotActive))
}

func TestMemoryRegistry_DiscardIsIdempotent(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	require.NoError(t, reg.Activate(ctx, "tok-2", time.Minute))
	require.NoError(t, reg.Discard(ctx, "tok-2"))
	// discarding again is not an error
	require.NoError(t, reg.Discard(ctx, "tok-2"))

	ok, err := reg.IsActive(ctx, "tok-2")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryRegistry_EntriesOutliveTokenExpiry(t *testing.T) {
	// the memory backend never expires entries on its own; only logout or
	// discard removes them
	reg := NewMemoryRegistry()
	ctx := context.Background()

	require.NoError(t, reg.Activate(ctx, "tok-3", time.Nanosecond))
	time.Sleep(2 * time.Millisecond)

	ok, err := reg.IsActive(ctx, "tok-3")
	require.NoError(t, err)
	require.True(t, ok)
}
