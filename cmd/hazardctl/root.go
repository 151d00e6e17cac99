package main

import (
	"github.com/shenikar/sinkhole_navigator/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

// newRootCmd возвращает корневую команду hazardctl
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hazardctl",
		Short:         "Offline tools for sinkhole risk areas",
		Long:          "hazardctl plans routes against a YAML hazard file, seeds hazards into the database and classifies risk probabilities.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug|info|warn|error")

	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newClassifyCmd())

	return rootCmd
}

// cmdLogger пишет логи в stderr, чтобы не смешивать их с JSON в stdout
func cmdLogger(cmd *cobra.Command) *logrus.Logger {
	return logger.New(logLevel, cmd.ErrOrStderr())
}
