// Package activity fetches and formats GitHub user-activity events.
//
// Events are fetched with a single GET against the per-user events
// endpoint, rendered as one human-readable line each, and cached raw to a
// JSON file. The event payload is never validated against a schema; only
// the fields needed for display are decoded, and missing fields degrade
// to documented placeholders.
package activity

import "encoding/json"

// Event is one GitHub user-activity record as returned by the remote API.
// The raw response bytes are retained so the cache can persist events
// verbatim, including fields this package never decodes.
type Event struct {
	// Type is the event type tag, e.g. "PushEvent".
	Type string `json:"type"`

	// Repo names the repository the event happened in.
	Repo Repo `json:"repo"`

	// Payload holds the display fields for the event types we format.
	Payload Payload `json:"payload"`

	// CreatedAt is the event creation timestamp as reported by the API.
	CreatedAt string `json:"created_at"`

	raw json.RawMessage
}

// Repo identifies a repository in an event.
type Repo struct {
	Name string `json:"name"`
}

// Payload is the shallow view of an event payload used for formatting.
type Payload struct {
	Action      string   `json:"action"`
	Commits     []Commit `json:"commits"`
	Issue       *Subject `json:"issue"`
	PullRequest *Subject `json:"pull_request"`
	RefType     string   `json:"ref_type"`
	Ref         string   `json:"ref"`
	Forkee      *Forkee  `json:"forkee"`
	Release     *Release `json:"release"`
}

// Commit is one commit in a PushEvent payload.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// Subject is a titled item (issue or pull request) in a payload.
type Subject struct {
	Title string `json:"title"`
}

// Forkee is the destination repository of a ForkEvent.
type Forkee struct {
	FullName string `json:"full_name"`
}

// Release is the release attached to a ReleaseEvent.
type Release struct {
	TagName string `json:"tag_name"`
}

// parseEvent decodes a raw event object, retaining the original bytes.
func parseEvent(raw json.RawMessage) (Event, error) {
	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return Event{}, err
	}
	event.raw = raw
	return event, nil
}
