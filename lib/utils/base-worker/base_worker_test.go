package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBaseWorker(t *testing.T) {
	t.Run(`runs until context done check`, func(t *testing.T) {
		var runs atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			NewInstance("test", time.Millisecond, 5*time.Millisecond).Run(ctx, func(ctx context.Context) {
				runs.Add(1)
			})
			close(done)
		}()
		require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop")
		}
	})

	t.Run(`panic does not stop worker check`, func(t *testing.T) {
		var runs atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go NewInstance("panicky", time.Millisecond, 5*time.Millisecond).Run(ctx, func(ctx context.Context) {
			runs.Add(1)
			panic("boom")
		})
		require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	})
}
