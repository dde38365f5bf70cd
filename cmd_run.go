package main

import (
	"context"
	"errors"
	"math"

	"github.com/spf13/cobra"

	"vec2d/hal"
	"vec2d/internal/buildinfo"
	"vec2d/sim"
)

func (c *cli) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the world in a window, or step it headless",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.cfg
			newApp := func(h hal.HAL) func() error {
				return sim.New(h, cfg.World, c.log).Step
			}
			width := int(math.Ceil(cfg.World.Width))
			height := int(math.Ceil(cfg.World.Height))

			if !cfg.Runner.Headless {
				return hal.RunWindow(newApp, hal.WindowConfig{
					Title:  "vec2d (" + buildinfo.Short() + ")",
					Width:  width,
					Height: height,
					Scale:  cfg.Runner.Scale,
					TPS:    cfg.Runner.Hz,
				}, c.log.Named("hal"))
			}

			err := hal.RunHeadless(cmd.Context(), newApp, hal.HeadlessConfig{
				Width:  width,
				Height: height,
				Hz:     cfg.Runner.Hz,
				Ticks:  uint64(cfg.Runner.Ticks),
			}, c.log.Named("hal"))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	f := cmd.Flags()
	f.Bool("headless", false, "run without a window")
	f.Int("hz", 60, "tick rate")
	f.Int("scale", 2, "window pixel scale")
	c.bind(f, map[string]string{
		"runner.headless": "headless",
		"runner.hz":       "hz",
		"runner.scale":    "scale",
	})
	return cmd
}
