package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestRunBatchMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testWorldConfig()
	stats, err := RunBatch(context.Background(), cfg, 6, 300, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, stats, 6)

	for i, got := range stats {
		wc := cfg
		wc.Seed = cfg.Seed + int64(i)
		w := NewWorld(wc)
		for s := 0; s < 300; s++ {
			w.Step()
		}
		require.Equal(t, w.Stats(), got, "world %d", i)
	}
}

func TestRunBatchCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, testWorldConfig(), 3, 1000, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunBatchNeedsWorlds(t *testing.T) {
	_, err := RunBatch(context.Background(), testWorldConfig(), 0, 10, nil)
	require.Error(t, err)
}
