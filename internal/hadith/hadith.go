// Package hadith provides the hadith library: the nine canonical collections
// and a client for the gading.dev hadith API.
package hadith

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.hadith.gading.dev"
	requestTimeout = 10 * time.Second
	maxBodySize    = 4 << 20 // 4 MB, ranges carry full Arabic texts
)

// ErrBadStatus indicates the API answered with a non-200 payload code.
var ErrBadStatus = errors.New("hadith: unexpected response code")

// Book is one hadith collection.
type Book struct {
	ID     string
	Name   string
	NameAr string
	Total  int
}

// Books lists the collections the API serves.
var Books = []Book{
	{"bukhari", "Sahih Bukhari", "صحيح البخاري", 7563},
	{"muslim", "Sahih Muslim", "صحيح مسلم", 7563},
	{"tirmidzi", "Jami` at-Tirmidhi", "جامع الترمذي", 3956},
	{"abudaud", "Sunan Abu Dawud", "سنن أبي داود", 5274},
	{"nasai", "Sunan an-Nasa'i", "سنن النسائي", 5761},
	{"ibnumajah", "Sunan Ibn Majah", "سنن ابن ماجه", 4341},
	{"ahmad", "Musnad Ahmad", "مسند أحمد", 27647},
	{"malik", "Muwatta Malik", "موطأ مالك", 1849},
	{"darimi", "Sunan ad-Darimi", "سنن الدارمي", 3503},
}

// BookByID looks a collection up by its API identifier.
func BookByID(id string) (Book, bool) {
	for _, b := range Books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// Hadith is one numbered narration with its Arabic text.
type Hadith struct {
	Number int    `json:"number"`
	Arabic string `json:"arab"`
}

type rangeResponse struct {
	Code int `json:"code"`
	Data struct {
		Name    string   `json:"name"`
		ID      string   `json:"id"`
		Hadiths []Hadith `json:"hadiths"`
	} `json:"data"`
}

// Client fetches narrations from the gading.dev hadith API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client against the public hadith API.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

// Range fetches narrations start through end (inclusive) from a collection.
func (c *Client) Range(ctx context.Context, bookID string, start, end int) ([]Hadith, error) {
	book, ok := BookByID(bookID)
	if !ok {
		return nil, fmt.Errorf("hadith: unknown book %q", bookID)
	}
	if start < 1 || end < start {
		return nil, fmt.Errorf("hadith: bad range %d-%d", start, end)
	}
	if end > book.Total {
		end = book.Total
	}

	body, err := c.get(ctx, "/books/"+bookID+"?range="+strconv.Itoa(start)+"-"+strconv.Itoa(end))
	if err != nil {
		return nil, err
	}

	var resp rangeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("hadith: parsing range: %w", err)
	}
	if resp.Code != 200 {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.Code)
	}
	return resp.Data.Hadiths, nil
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("hadith: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hadith: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hadith: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("hadith: reading response: %w", err)
	}
	return body, nil
}
