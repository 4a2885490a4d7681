// Package ai provides an HTTP-backed task prioritizer. It posts the
// pending task list to a configured endpoint and decodes the ranked
// result. Callers fall back to local ordering when the request fails
// or times out.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mtamigo/focus/internal/domain"
)

// Ensure Client implements domain.Prioritizer interface.
var _ domain.Prioritizer = (*Client)(nil)

// Client calls a remote prioritization endpoint.
// Fields are ordered to minimize memory padding.
type Client struct {
	http     *http.Client
	endpoint string
	apiKey   string
}

// New creates a new Client for the given endpoint. The API key may be
// empty, in which case no Authorization header is sent.
func New(endpoint, apiKey string) *Client {
	return &Client{
		http:     &http.Client{},
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// taskPayload is the wire form of one pending task.
type taskPayload struct {
	Title        string `json:"title"`
	Urgency      string `json:"urgency,omitempty"`
	Category     string `json:"category,omitempty"`
	DeadlineText string `json:"deadline_text,omitempty"`
	ID           int    `json:"id"`
	EstimatedMin int    `json:"estimated_min,omitempty"`
}

// requestBody is the payload posted to the endpoint.
type requestBody struct {
	Tasks []taskPayload `json:"tasks"`
}

// rankedPayload mirrors one entry of the endpoint's response.
type rankedPayload struct {
	Reason  string `json:"reason"`
	Urgency string `json:"urgency"`
	TaskID  int    `json:"task_id"`
	Rank    int    `json:"rank"`
}

// responseBody is the expected response shape.
type responseBody struct {
	Ranked []rankedPayload `json:"ranked"`
}

// Prioritize posts tasks to the endpoint and returns the ranked
// result. The context controls the request deadline; the caller is
// expected to apply the configured timeout.
func (c *Client) Prioritize(ctx context.Context, tasks []*domain.Task) ([]domain.RankedTask, error) {
	payload := requestBody{Tasks: make([]taskPayload, 0, len(tasks))}
	for _, t := range tasks {
		payload.Tasks = append(payload.Tasks, taskPayload{
			Title:        t.Title,
			Urgency:      string(t.Urgency),
			Category:     t.Category,
			DeadlineText: t.DeadlineText,
			ID:           t.ID,
			EstimatedMin: t.EstimatedMin,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode prioritize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build prioritize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prioritize request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prioritize request: unexpected status %d", resp.StatusCode)
	}

	var decoded responseBody
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode prioritize response: %w", err)
	}

	known := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	ranked := make([]domain.RankedTask, 0, len(decoded.Ranked))
	for _, r := range decoded.Ranked {
		if !known[r.TaskID] {
			return nil, fmt.Errorf("prioritize response: %w: %d", domain.ErrUnknownTaskID, r.TaskID)
		}
		ranked = append(ranked, domain.RankedTask{
			Reason:  r.Reason,
			Urgency: domain.Urgency(r.Urgency),
			TaskID:  r.TaskID,
			Rank:    r.Rank,
		})
	}
	return ranked, nil
}
