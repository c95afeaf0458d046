package commands

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgPath string
	verbose bool
	logger  *zap.Logger
	runID   string
)

// Execute runs the CLI. The returned error, if any, wraps one of the
// domain sentinels so that main can pick the exit code.
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "seedhunt",
		Short:        "Recover a 24-word wallet recovery phrase from partial knowledge",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = buildLogger(verbose)
			if err != nil {
				return err
			}
			runID = uuid.NewString()
			logger = logger.With(zap.String("run_id", runID))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "wallet_config.yaml", "path to the wallet configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")

	root.AddCommand(runCmd(), deriveCmd(), pathsCmd())
	return root
}

func buildLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
