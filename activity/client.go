package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"

	// DefaultLimit is the number of events fetched when the caller does
	// not ask for a specific count.
	DefaultLimit = 10

	requestTimeout = 10 * time.Second

	userAgent = "tracklet-activity-tracker"
)

// Client fetches user-activity events from the GitHub REST API.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a client for the given API base URL. An empty baseURL
// selects the public GitHub API. An empty token sends unauthenticated
// requests.
func NewClient(baseURL, token string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// FetchEvents performs a single GET against the per-user events endpoint
// and returns at most limit events (DefaultLimit when limit <= 0). A 200
// response whose body is valid JSON but not an array yields an empty
// event list.
func (c *Client) FetchEvents(ctx context.Context, username string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	endpoint := fmt.Sprintf("%s/users/%s/events", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// handled below
	case http.StatusNotFound:
		return nil, fmt.Errorf("user %s: %w", username, ErrUserNotFound)
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		if !json.Valid(body) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		// Valid JSON that is not an array carries no events.
		return nil, nil
	}

	if len(raws) > limit {
		raws = raws[:limit]
	}

	events := make([]Event, 0, len(raws))
	for i, raw := range raws {
		event, err := parseEvent(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", ErrInvalidResponse, i, err)
		}
		events = append(events, event)
	}

	return events, nil
}
