// Package main implements the tt CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tracklet/tracklet/internal/config"
	"github.com/tracklet/tracklet/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tt",
	Short:         "Tracklet - a local JSON-file task tracker",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// openStore builds the task store from configuration in the current
// directory.
func openStore() (*task.Store, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	return task.NewStore(cfg.Tasks.File), nil
}
