package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistryLifecycle(t *testing.T) {
	reg := NewMemory()
	ctx := context.Background()

	require.NoError(t, reg.Add(ctx, "abc", time.Minute))

	live, err := reg.Valid(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, live)

	require.NoError(t, reg.Revoke(ctx, "abc"))

	live, err = reg.Valid(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, live)
}

func TestMemoryRegistryUnknownID(t *testing.T) {
	reg := NewMemory()

	live, err := reg.Valid(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, live)
}

func TestMemoryRegistryExpiry(t *testing.T) {
	reg := NewMemory()
	ctx := context.Background()

	require.NoError(t, reg.Add(ctx, "short", -time.Second))

	live, err := reg.Valid(ctx, "short")
	require.NoError(t, err)
	assert.False(t, live)
}
