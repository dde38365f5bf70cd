package sim

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vec2d/internal/config"
)

// cancelCheckEvery is how many steps a batch world runs between context checks.
const cancelCheckEvery = 256

// RunBatch steps n worlds for ticks steps each, concurrently. World i is seeded
// with cfg.Seed+i, so results match stepping the same worlds one by one.
func RunBatch(ctx context.Context, cfg config.WorldConfig, n, ticks int, log *zap.Logger) ([]Stats, error) {
	if n <= 0 {
		return nil, fmt.Errorf("batch needs at least one world, got %d", n)
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("batch")

	stats := make([]Stats, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			wc := cfg
			wc.Seed = cfg.Seed + int64(i)
			w := NewWorld(wc)
			for s := 0; s < ticks; s++ {
				if s%cancelCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				w.Step()
			}
			stats[i] = w.Stats()
			log.Debug("world done",
				zap.Int("world", i),
				zap.Int64("seed", wc.Seed),
				zap.Int("bounces", stats[i].Bounces),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
