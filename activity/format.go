package activity

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/truncate"
)

// DefaultLineWidth is the maximum rendered width of a formatted line's
// variable text, ellipsis included.
const DefaultLineWidth = 80

const lineEllipsis = "..."

// FormatEvent renders one human-readable line for an event, dispatched on
// its type tag. Unknown types fall through to a generic "TYPE on REPO"
// line, and missing payload fields degrade to default placeholders.
func FormatEvent(event Event, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = DefaultLineWidth
	}

	eventType := event.Type
	if eventType == "" {
		eventType = "UnknownEvent"
	}
	repo := event.Repo.Name
	if repo == "" {
		repo = "UnknownRepo"
	}
	payload := event.Payload

	switch eventType {
	case "PushEvent":
		count := len(payload.Commits)
		plural := "s"
		if count == 1 {
			plural = ""
		}
		return fmt.Sprintf("Pushed %d commit%s to %s", count, plural, repo)

	case "IssuesEvent":
		action := orDefault(payload.Action, "performed")
		issue := truncateText(subjectTitle(payload.Issue), maxWidth)
		return fmt.Sprintf("%s issue '%s' in %s", capitalize(action), issue, repo)

	case "WatchEvent":
		action := orDefault(payload.Action, "started")
		return fmt.Sprintf("%s watching %s", capitalize(action), repo)

	case "IssueCommentEvent":
		action := orDefault(payload.Action, "commented")
		issue := truncateText(subjectTitle(payload.Issue), maxWidth)
		return fmt.Sprintf("%s comment on issue '%s' in %s", capitalize(action), issue, repo)

	case "PullRequestEvent":
		action := orDefault(payload.Action, "performed")
		title := truncateText(subjectTitle(payload.PullRequest), maxWidth)
		return fmt.Sprintf("%s pull request '%s' in %s", capitalize(action), title, repo)

	case "PullRequestReviewCommentEvent":
		return fmt.Sprintf("Commented on a pull request in %s", repo)

	case "CreateEvent":
		return fmt.Sprintf("Created %s '%s' in %s", orDefault(payload.RefType, "ref"), payload.Ref, repo)

	case "DeleteEvent":
		return fmt.Sprintf("Deleted %s '%s' in %s", orDefault(payload.RefType, "ref"), payload.Ref, repo)

	case "ForkEvent":
		forkee := "<fork>"
		if payload.Forkee != nil && payload.Forkee.FullName != "" {
			forkee = payload.Forkee.FullName
		}
		return fmt.Sprintf("Forked %s to %s", repo, forkee)

	case "ReleaseEvent":
		action := orDefault(payload.Action, "released")
		tag := ""
		if payload.Release != nil {
			tag = payload.Release.TagName
		}
		return fmt.Sprintf("%s release '%s' in %s", capitalize(action), tag, repo)

	case "StarEvent":
		action := orDefault(payload.Action, "starred")
		return fmt.Sprintf("%s %s", capitalize(action), repo)

	default:
		return fmt.Sprintf("%s on %s", eventType, repo)
	}
}

func subjectTitle(subject *Subject) string {
	if subject == nil {
		return ""
	}
	return subject.Title
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// truncateText limits text to maxWidth, replacing the tail with an
// ellipsis so that the result never exceeds maxWidth.
func truncateText(text string, maxWidth int) string {
	if utf8.RuneCountInString(text) <= maxWidth {
		return text
	}
	return truncate.StringWithTail(text, uint(maxWidth), lineEllipsis)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(value string) string {
	if value == "" {
		return value
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + strings.ToLower(value[size:])
}
