// Package radio lists Qur'an radio streams from the mp3quran.net directory.
package radio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://mp3quran.net/api/v3"
	requestTimeout = 10 * time.Second
	maxBodySize    = 4 << 20 // the directory is a few hundred KB
)

// Station is one radio stream.
type Station struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Client fetches the station directory.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client against the public mp3quran API.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

// Stations returns the full station directory.
func (c *Client) Stations(ctx context.Context) ([]Station, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/radios", nil)
	if err != nil {
		return nil, fmt.Errorf("radio: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("radio: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("radio: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("radio: reading response: %w", err)
	}

	var payload struct {
		Radios []Station `json:"radios"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("radio: parsing directory: %w", err)
	}
	return payload.Radios, nil
}
