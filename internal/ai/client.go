// Package ai summarizes a user's week through an optional completion
// service. Without an endpoint configured it falls back to a local
// deterministic summary, so nothing else depends on the network.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
)

// Client talks to a JSON completion endpoint. A zero Endpoint disables
// remote calls entirely.
type Client struct {
	Endpoint string
	APIKey   string
	HTTP     *http.Client
}

func New(endpoint, apiKey string, timeoutSeconds int) *Client {
	return &Client{
		Endpoint: endpoint,
		APIKey:   apiKey,
		HTTP:     &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	}
}

type completionRequest struct {
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

// Summarize produces a short narrative for the given entries. Remote
// failures degrade to the local summary rather than erroring the view.
func (c *Client) Summarize(ctx context.Context, entries []models.Entry) string {
	if c == nil || c.Endpoint == "" {
		return LocalSummary(entries)
	}
	text, err := c.complete(ctx, buildPrompt(entries))
	if err != nil || strings.TrimSpace(text) == "" {
		return LocalSummary(entries)
	}
	return text
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	var out completionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func buildPrompt(entries []models.Entry) string {
	var sb strings.Builder
	sb.WriteString("Summarize this timesheet in two sentences:\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s %s-%s %.1fh %s (%s)\n",
			e.Date, e.StartTime, e.EndTime, e.DurationHours, e.TaskName, e.TaskCategory)
	}
	return sb.String()
}

// LocalSummary is the deterministic fallback: total hours plus the top
// category and task by time.
func LocalSummary(entries []models.Entry) string {
	if len(entries) == 0 {
		return "No hours logged."
	}
	var total float64
	byTask := make(map[string]float64)
	for _, e := range entries {
		total += e.DurationHours
		byTask[e.TaskName] += e.DurationHours
	}
	categories := timesheet.CategoryDistribution(entries)
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Hours != categories[j].Hours {
			return categories[i].Hours > categories[j].Hours
		}
		return categories[i].Category < categories[j].Category
	})

	topTask, topHours := "", -1.0
	for name, hours := range byTask {
		if hours > topHours || (hours == topHours && name < topTask) {
			topTask, topHours = name, hours
		}
	}
	return fmt.Sprintf("Logged %.1fh across %d entries. Most time went to %q (%.1fh), mostly %s.",
		total, len(entries), topTask, topHours, categories[0].Category)
}
