package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_BurstThenDeny(t *testing.T) {
	kl := New(1, 2)

	assert.True(t, kl.Allow("user-1"))
	assert.True(t, kl.Allow("user-1"))
	assert.False(t, kl.Allow("user-1"), "burst exhausted")
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	kl := New(1, 1)

	assert.True(t, kl.Allow("user-1"))
	assert.False(t, kl.Allow("user-1"))
	assert.True(t, kl.Allow("user-2"), "a different key has its own bucket")
}

func TestWait_RespectsContext(t *testing.T) {
	kl := New(0.01, 1)
	require.True(t, kl.Allow("user-1"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := kl.Wait(ctx, "user-1")
	assert.Error(t, err, "waiting past the deadline must fail")
}
