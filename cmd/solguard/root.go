package main

import (
	"github.com/spf13/cobra"

	"github.com/solguard/solguard/internal/xlog"
)

// RootCommand is the base CLI command every subcommand attaches to.
var RootCommand = &cobra.Command{
	Use:   "solguard",
	Short: "Solidity static analysis engine",
	Long:  "solguard parses Solidity source, runs a registry of rule checkers against it, and reports structured findings.",
}

var logLevel string

func init() {
	RootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
}

func newLogger() xlog.Logger {
	log := xlog.New()
	if err := log.SetLevel(logLevel); err != nil {
		_ = log.SetLevel("warn")
		log.Warnf("invalid --log-level %q, defaulting to warn", logLevel)
	}
	return log
}
