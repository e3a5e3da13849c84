package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Ping(context.Background()))
	return NewFixedWindowLimiter(c), mr
}

func TestAllowFixedWindow_AllowsUpToLimit(t *testing.T) {
	l, _ := newTestLimiter(t)

	for i := 1; i <= 3; i++ {
		d, err := l.AllowFixedWindow(context.Background(), "rl:test:u1:0", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d should pass", i)
		assert.Equal(t, 3-i, d.Remaining)
	}

	d, err := l.AllowFixedWindow(context.Background(), "rl:test:u1:0", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
}

func TestAllowFixedWindow_WindowReset(t *testing.T) {
	l, mr := newTestLimiter(t)

	for i := 0; i < 2; i++ {
		_, err := l.AllowFixedWindow(context.Background(), "rl:test:u1:0", 1, time.Minute)
		require.NoError(t, err)
	}

	// miniredis clock: advance past the window, key expires.
	mr.FastForward(61 * time.Second)

	d, err := l.AllowFixedWindow(context.Background(), "rl:test:u1:0", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestAllowFixedWindow_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t)

	_, err := l.AllowFixedWindow(context.Background(), "rl:login:ip:1.2.3.4:0", 1, time.Minute)
	require.NoError(t, err)

	d, err := l.AllowFixedWindow(context.Background(), "rl:login:ip:5.6.7.8:0", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestAllowFixedWindow_NilClient_FailsOpen(t *testing.T) {
	t.Parallel()

	l := NewFixedWindowLimiter(nil)
	d, err := l.AllowFixedWindow(context.Background(), "rl:x", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestAllowFixedWindow_ZeroLimit_Allows(t *testing.T) {
	l, _ := newTestLimiter(t)

	d, err := l.AllowFixedWindow(context.Background(), "rl:x", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}
