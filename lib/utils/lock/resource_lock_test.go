package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResourceLock(t *testing.T) {
	t.Run(`single slot check`, func(t *testing.T) {
		l := NewResourceLock(1)
		require.True(t, l.Acquire(context.Background(), "first"))
		require.Equal(t, 1, l.InUse())

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		require.False(t, l.Acquire(ctx, "second"))

		l.Release("first")
		require.Equal(t, 0, l.InUse())
		require.True(t, l.Acquire(context.Background(), "second"))
		l.Release("second")
	})

	t.Run(`waiter wakes up on release check`, func(t *testing.T) {
		l := NewResourceLock(1)
		require.True(t, l.Acquire(context.Background(), "first"))
		acquired := make(chan bool)
		go func() {
			acquired <- l.Acquire(context.Background(), "second")
		}()
		time.Sleep(20 * time.Millisecond)
		l.Release("first")
		require.True(t, <-acquired)
		l.Release("second")
	})

	t.Run(`cancelled context check`, func(t *testing.T) {
		l := NewResourceLock(2)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.False(t, l.Acquire(ctx, "x"))
		require.Equal(t, 2, l.Capacity())
		require.Equal(t, 0, l.InUse())
	})
}
