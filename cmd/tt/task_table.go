package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tracklet/tracklet/internal/ui"
	"github.com/tracklet/tracklet/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, now))
}

func formatTaskTable(tasks []task.Task, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "AGE", "UPDATED", "DESCRIPTION"}, len(tasks))

	for _, t := range tasks {
		row := []string{
			strconv.Itoa(t.ID),
			ui.StyleStatus(string(t.Status)),
			ui.FormatTimeAgeShort(t.CreatedAt, now),
			ui.FormatTimeAgeShort(t.UpdatedAt, now),
			ui.TruncateCell(t.Description),
		}
		builder.AddRow(row)
	}

	return builder.String()
}
