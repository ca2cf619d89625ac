package main

import (
	"strings"
	"testing"
	"time"

	"github.com/tracklet/tracklet/task"
)

func TestFormatTaskTable(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{
			ID:          1,
			Description: "write tests",
			Status:      task.StatusTodo,
			CreatedAt:   now.Add(-2 * time.Hour),
			UpdatedAt:   now.Add(-time.Hour),
		},
		{
			ID:          12,
			Description: "ship release",
			Status:      task.StatusDone,
			CreatedAt:   now.Add(-48 * time.Hour),
			UpdatedAt:   now.Add(-30 * time.Minute),
		},
	}

	got := formatTaskTable(tasks, now)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}

	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "DESCRIPTION") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "write tests") || !strings.Contains(lines[1], "2h") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(lines[2], "2d") {
		t.Errorf("expected 2d age in second row, got %q", lines[2])
	}
}

func TestFormatTaskTable_TruncatesDescription(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{
		{
			ID:          1,
			Description: strings.Repeat("long ", 30),
			Status:      task.StatusTodo,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	got := formatTaskTable(tasks, now)
	if !strings.Contains(got, "...") {
		t.Errorf("expected truncated description in %q", got)
	}
}
