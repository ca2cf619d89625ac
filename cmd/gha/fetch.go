package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tracklet/tracklet/activity"
	"github.com/tracklet/tracklet/internal/config"
)

// Exit codes for fetch failures.
const (
	exitUserNotFound = 2
	exitFetchFailed  = 3
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <username>",
	Short: "Fetch recent GitHub activity for a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

var fetchLimit int

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().IntVarP(&fetchLimit, "limit", "n", activity.DefaultLimit, "Number of events to fetch")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	client := activity.NewClient(cfg.Activity.APIURL, cfg.Token())
	events, err := client.FetchEvents(cmd.Context(), args[0], fetchLimit)
	if err != nil {
		return &fetchError{err: err}
	}

	printEvents(os.Stdout, events, fetchLimit)

	if len(events) == 0 {
		fmt.Println("No events to display.")
		return nil
	}

	cache := activity.NewCache(cfg.Activity.CacheFile)
	if err := cache.Save(events); err != nil {
		// A post-fetch persistence failure is a warning, not a process
		// failure; the user already has the fetched data.
		fmt.Fprintf(os.Stderr, "Warning: failed to write JSON file: %v\n", err)
		return nil
	}
	fmt.Printf("Saved %d events to %s\n", len(events), cfg.Activity.CacheFile)
	return nil
}

// fetchError wraps a fetch failure with its process exit code.
type fetchError struct {
	err error
}

func (e *fetchError) Error() string {
	return e.err.Error()
}

func (e *fetchError) Unwrap() error {
	return e.err
}

func (e *fetchError) ExitCode() int {
	if errors.Is(e.err, activity.ErrUserNotFound) {
		return exitUserNotFound
	}
	return exitFetchFailed
}
