// Package client is a small HTTP client for the villa server API, used by
// the CLI.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/models"
)

// Client talks to a running villa server.
type Client struct {
	baseURL    string
	cronSecret string
	http       *http.Client
}

// New creates a client for the server at baseURL. cronSecret may be empty
// when the server's simulate endpoint is open.
func New(baseURL, cronSecret string) *Client {
	return &Client{
		baseURL:    baseURL,
		cronSecret: cronSecret,
		http:       &http.Client{Timeout: 2 * time.Minute},
	}
}

// SimulateResult mirrors the server's cycle trigger response.
type SimulateResult struct {
	Success       bool `json:"success"`
	Interactions  int  `json:"interactions"`
	Events        int  `json:"events"`
	Confessionals int  `json:"confessionals"`
	Conversations int  `json:"conversations"`
}

// Simulate triggers one simulation cycle.
func (c *Client) Simulate(ctx context.Context) (*SimulateResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/simulate", nil)
	if err != nil {
		return nil, err
	}
	if c.cronSecret != "" {
		req.Header.Set("Authorization", "Bearer "+c.cronSecret)
	}

	var result SimulateResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Characters lists the full cast.
func (c *Client) Characters(ctx context.Context) ([]models.Character, error) {
	var chars []models.Character
	if err := c.get(ctx, "/api/characters", nil, &chars); err != nil {
		return nil, err
	}
	return chars, nil
}

// Timeline lists the newest timeline events, most recent first.
func (c *Client) Timeline(ctx context.Context, limit int) ([]models.TimelineEvent, error) {
	var events []models.TimelineEvent
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "/api/timeline", q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Confessionals lists the newest confessionals, most recent first.
func (c *Client) Confessionals(ctx context.Context, limit int) ([]models.Confessional, error) {
	var confs []models.Confessional
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "/api/confessionals", q, &confs); err != nil {
		return nil, err
	}
	return confs, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
