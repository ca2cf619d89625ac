package main

import (
	"fmt"
	"io"
	"time"

	"github.com/tracklet/tracklet/activity"
)

// printEvents renders up to limit formatted event lines, each annotated
// with a best-effort human timestamp.
func printEvents(w io.Writer, events []activity.Event, limit int) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return
	}
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	for _, event := range events {
		line := activity.FormatEvent(event, activity.DefaultLineWidth)
		if event.CreatedAt == "" {
			fmt.Fprintf(w, "- %s\n", line)
			continue
		}
		fmt.Fprintf(w, "- %s (%s)\n", line, formatEventTime(event.CreatedAt))
	}
}

// formatEventTime renders an RFC 3339 timestamp as "YYYY-MM-DD HH:MM",
// falling back to the raw string if it does not parse.
func formatEventTime(created string) string {
	parsed, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return created
	}
	return parsed.Format("2006-01-02 15:04")
}
