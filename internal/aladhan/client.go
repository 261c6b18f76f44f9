// Package aladhan provides a client for the api.aladhan.com prayer-time and
// Hijri-calendar API.
package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.aladhan.com/v1"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrBadStatus indicates the API answered with a non-200 payload code.
var ErrBadStatus = errors.New("aladhan: unexpected response code")

// Client fetches prayer times, qibla direction, and Hijri dates.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client against the public aladhan API.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

// TimingsByCity fetches today's prayer times for city/country using the given
// calculation method, along with the day's Hijri date.
func (c *Client) TimingsByCity(ctx context.Context, city, country string, method int) (Timings, HijriDate, error) {
	q := url.Values{}
	q.Set("city", city)
	q.Set("country", country)
	q.Set("method", strconv.Itoa(method))

	body, err := c.get(ctx, "/timingsByCity?"+q.Encode())
	if err != nil {
		return Timings{}, HijriDate{}, err
	}

	var resp timingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Timings{}, HijriDate{}, fmt.Errorf("aladhan: parsing timings: %w", err)
	}
	if resp.Code != 200 {
		return Timings{}, HijriDate{}, fmt.Errorf("%w: %d", ErrBadStatus, resp.Code)
	}

	return resp.Data.Timings, parseHijri(resp.Data.Date.Hijri), nil
}

// Qibla fetches the qibla direction in degrees from north for a coordinate.
func (c *Client) Qibla(ctx context.Context, lat, lon float64) (float64, error) {
	body, err := c.get(ctx, fmt.Sprintf("/qibla/%f/%f", lat, lon))
	if err != nil {
		return 0, err
	}

	var resp qiblaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("aladhan: parsing qibla: %w", err)
	}
	if resp.Code != 200 {
		return 0, fmt.Errorf("%w: %d", ErrBadStatus, resp.Code)
	}
	return resp.Data.Direction, nil
}

// HijriFor converts a Gregorian date to its Hijri equivalent.
func (c *Client) HijriFor(ctx context.Context, date time.Time) (HijriDate, error) {
	body, err := c.get(ctx, "/gToH/"+date.Format("02-01-2006"))
	if err != nil {
		return HijriDate{}, err
	}

	var resp gToHResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return HijriDate{}, fmt.Errorf("aladhan: parsing hijri date: %w", err)
	}
	if resp.Code != 200 {
		return HijriDate{}, fmt.Errorf("%w: %d", ErrBadStatus, resp.Code)
	}
	return parseHijri(resp.Data.Hijri), nil
}

// FetchDay fetches timings and the Hijri date for today. Partial data is
// returned even if a request fails; Err carries the first failure.
func (c *Client) FetchDay(ctx context.Context, city, country string, method int) *DayData {
	result := &DayData{FetchedAt: time.Now()}

	timings, hijri, err := c.TimingsByCity(ctx, city, country, method)
	if err != nil {
		result.Err = err
		return result
	}
	result.Timings = timings
	result.Hijri = hijri

	return result
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("aladhan: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aladhan: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aladhan: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("aladhan: reading response: %w", err)
	}
	return body, nil
}

func parseHijri(p hijriPayload) HijriDate {
	day, _ := strconv.Atoi(p.Day)
	year, _ := strconv.Atoi(p.Year)
	return HijriDate{
		Day:       day,
		Month:     p.Month.Number,
		MonthEn:   p.Month.En,
		MonthAr:   p.Month.Ar,
		Year:      year,
		Weekday:   p.Weekday.En,
		WeekdayAr: p.Weekday.Ar,
	}
}
