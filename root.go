package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"vec2d/internal/buildinfo"
	"vec2d/internal/config"
	"vec2d/internal/observability"
)

// cli carries state shared by the subcommands once the root pre-run has loaded it.
type cli struct {
	v       *viper.Viper
	cfgFile string
	envFile string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:               "vec2d",
		Short:             "Bouncing and steering bodies driven by 2D vector arithmetic.",
		Version:           buildinfo.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { observability.Sync() },
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVarP(&c.cfgFile, "config", "c", "", "config file (default is ./vec2d.yaml)")
	pf.StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded into the environment first")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	pf.String("log-file", "", "also write JSON logs to this rotating file")
	pf.Int("bodies", 24, "number of bodies per world")
	pf.Int64("seed", 1, "world seed")
	pf.Int("ticks", 0, "stop after N ticks (0 = run forever; batch defaults to 1000)")
	c.bind(pf, map[string]string{
		"logger.level":    "log-level",
		"logger.format":   "log-format",
		"logger.log_file": "log-file",
		"world.bodies":    "bodies",
		"world.seed":      "seed",
		"runner.ticks":    "ticks",
	})

	root.AddCommand(c.runCmd(), c.batchCmd(), versionCmd())
	return root
}

// bind maps viper keys to flags so flags win over file and environment values.
func (c *cli) bind(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := c.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(c.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "vec2d"})
		return err
	}
	c.cfg = cfg

	observability.InitializeLogger(cfg.Logger)
	c.log = observability.GetLogger()
	c.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("version", buildinfo.Short()),
		zap.String("config_file", c.v.ConfigFileUsed()),
	)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
