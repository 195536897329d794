package smoke

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

// activityView is the part of GET /activities the runner reads.
type activityView struct {
	Participants []string `json:"participants"`
}

// responseBody covers both the success and the error payloads.
type responseBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// client wraps http.Client with the service base URL.
type client struct {
	http    *http.Client
	baseURL string
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *client) activities(ctx context.Context) (map[string]activityView, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list activities: unexpected status %d", resp.StatusCode)
	}
	var out map[string]activityView
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return out, nil
}

// membership performs a sign-up (POST) or unregister (DELETE) and returns the
// status code plus the message or detail from the body.
func (c *client) membership(ctx context.Context, method, activity, email string) (int, string, error) {
	suffix := "signup"
	if method == http.MethodDelete {
		suffix = "participants"
	}
	target := fmt.Sprintf("%s/activities/%s/%s?email=%s",
		c.baseURL, url.PathEscape(activity), suffix, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, method, target, http.NoBody)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("%s %s: %w", method, suffix, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read body: %w", err)
	}
	var body responseBody
	_ = json.Unmarshal(raw, &body)
	text := body.Message
	if text == "" {
		text = body.Detail
	}
	return resp.StatusCode, text, nil
}
