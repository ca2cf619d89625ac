package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tracklet/tracklet/task"
)

// tt add
var addCmd = &cobra.Command{
	Use:   "add <description>...",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

// tt update
var updateCmd = &cobra.Command{
	Use:   "update <id> [description]...",
	Short: "Update a task's description and/or status",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUpdate,
}

var updateStatus string

// tt delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

// tt list
var listCmd = &cobra.Command{
	Use:       "list [status]",
	Short:     "List tasks, optionally filtered by status",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"todo", "in-progress", "done"},
	RunE:      runList,
}

var listJSON bool

// tt mark-in-progress
var markInProgressCmd = &cobra.Command{
	Use:   "mark-in-progress <id>",
	Short: "Mark a task as in-progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(args[0], task.StatusInProgress)
	},
}

// tt mark-done
var markDoneCmd = &cobra.Command{
	Use:   "mark-done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(args[0], task.StatusDone)
	},
}

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, deleteCmd, listCmd, markInProgressCmd, markDoneCmd)

	// tt update flags
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status (todo, in-progress, done)")

	// tt list flags
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	created, err := store.Add(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Printf("Task added successfully (ID: %d)\n", created.ID)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	opts := task.UpdateOptions{}
	if len(args) > 1 {
		description := strings.Join(args[1:], " ")
		opts.Description = &description
	}
	if cmd.Flags().Changed("status") {
		status := task.Status(updateStatus)
		opts.Status = &status
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if _, err := store.Update(id, opts); err != nil {
		switch {
		case errors.Is(err, task.ErrNoChanges):
			fmt.Println("No changes provided.")
			return nil
		case errors.Is(err, task.ErrTaskNotFound):
			fmt.Printf("Task %d not found.\n", id)
			return nil
		}
		return err
	}

	fmt.Printf("Task %d updated.\n", id)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Delete(id); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			fmt.Printf("Task %d not found.\n", id)
			return nil
		}
		return err
	}

	fmt.Printf("Task %d deleted.\n", id)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	filter := task.ListFilter{}
	if len(args) > 0 {
		status := task.Status(args[0])
		filter.Status = &status
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	tasks, err := store.List(filter)
	if err != nil {
		return err
	}

	if listJSON {
		if tasks == nil {
			tasks = []task.Task{}
		}
		return encodeJSONToStdout(tasks)
	}

	printTaskTable(tasks, time.Now())
	return nil
}

func runMark(arg string, status task.Status) error {
	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if _, err := store.Update(id, task.UpdateOptions{Status: &status}); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			fmt.Printf("Task %d not found.\n", id)
			return nil
		}
		return err
	}

	fmt.Printf("Task %d marked %s.\n", id, status)
	return nil
}

func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

func encodeJSONToStdout(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
