package cmd

import (
	"fmt"

	"github.com/lazharichir/solitaire/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	seed       int64
	noColor    bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Klondike tableau rules engine",
	Long: `Solitaire deals Klondike tableaux and checks moves between the seven working stacks.
A deal is fully determined by its seed, so a game can be replayed move by move.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadConfigFrom(configPath)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if noColor {
			cfg.Color = false
		}
		if verbose {
			cfg.LogLevel = "debug"
		}

		logger, err = newLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/solitaire/config.toml)")
	RootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "shuffle seed, 0 for a random deal")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "print cards without colors")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log game events")

	RootCmd.AddCommand(dealCmd)
	RootCmd.AddCommand(moveCmd)
	RootCmd.AddCommand(canMoveCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
