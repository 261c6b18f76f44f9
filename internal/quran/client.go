package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.quran.com/api/v4"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// Verse is one ayah in the Uthmani script.
type Verse struct {
	ID   int    `json:"id"`
	Key  string `json:"verse_key"`
	Text string `json:"text_uthmani"`
}

type versesResponse struct {
	Verses []Verse `json:"verses"`
}

// Client fetches mushaf pages from the quran.com API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client against the public quran.com API.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

// PageVerses fetches the Uthmani-script verses on a mushaf page (1-604).
func (c *Client) PageVerses(ctx context.Context, page int) ([]Verse, error) {
	if page < 1 || page > TotalPages {
		return nil, fmt.Errorf("quran: page %d out of range 1-%d", page, TotalPages)
	}

	body, err := c.get(ctx, "/quran/verses/uthmani?page_number="+strconv.Itoa(page))
	if err != nil {
		return nil, err
	}

	var resp versesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("quran: parsing verses: %w", err)
	}
	if len(resp.Verses) == 0 {
		return nil, fmt.Errorf("quran: empty page %d", page)
	}
	return resp.Verses, nil
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("quran: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quran: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quran: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("quran: reading response: %w", err)
	}
	return body, nil
}
