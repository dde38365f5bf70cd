package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vec2d/sim"
)

const defaultBatchTicks = 1000

func (c *cli) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Step several seeded worlds concurrently and print their stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.cfg
			ticks := cfg.Runner.Ticks
			if ticks == 0 {
				ticks = defaultBatchTicks
			}

			stats, err := sim.RunBatch(cmd.Context(), cfg.World, cfg.Runner.Worlds, ticks, c.log)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WORLD\tSEED\tSTEPS\tBOUNCES\tMEAN SPEED\tMAX SPEED")
			for i, s := range stats {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.3f\t%.3f\n",
					i, cfg.World.Seed+int64(i), s.Steps, s.Bounces, s.MeanSpeed, s.MaxSpeed)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			c.log.Info("batch finished", zap.Int("worlds", len(stats)), zap.Int("ticks", ticks))
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("worlds", 4, "number of worlds to run")
	c.bind(f, map[string]string{"runner.worlds": "worlds"})
	return cmd
}
