//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// RunHeadless runs the app without opening a window.
// It returns nil once cfg.Ticks frames have run, or ctx.Err() on cancellation.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.Width, cfg.Height)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	log.Debug("headless runner started",
		zap.Int("hz", cfg.Hz),
		zap.Uint64("ticks", cfg.Ticks),
		zap.Int("width", h.fb.width),
		zap.Int("height", h.fb.height),
	)

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			log.Debug("headless runner canceled", zap.Uint64("ticks", tick))
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return fmt.Errorf("headless step %d: %w", tick, err)
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				log.Debug("headless runner finished",
					zap.Uint64("ticks", tick),
					zap.Uint64("frames", h.fb.presented()),
				)
				return nil
			}
		}
	}
}
