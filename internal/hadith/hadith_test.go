package hadith

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBooks(t *testing.T) {
	if len(Books) != 9 {
		t.Fatalf("len(Books) = %d, want 9", len(Books))
	}
	seen := map[string]bool{}
	for _, b := range Books {
		if b.ID == "" || b.Name == "" || b.NameAr == "" || b.Total < 1 {
			t.Fatalf("incomplete book %+v", b)
		}
		if seen[b.ID] {
			t.Fatalf("duplicate book id %q", b.ID)
		}
		seen[b.ID] = true
	}

	b, ok := BookByID("bukhari")
	if !ok || b.Total != 7563 {
		t.Fatalf("BookByID(bukhari) = %+v, %v", b, ok)
	}
	if _, ok := BookByID("nope"); ok {
		t.Fatal("BookByID should reject unknown ids")
	}
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{baseURL: srv.URL, http: srv.Client()}
}

func TestRange(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		_, _ = w.Write([]byte(`{
		  "code": 200,
		  "message": "OK",
		  "data": {
		    "name": "HR. Bukhari",
		    "id": "bukhari",
		    "available": 7563,
		    "hadiths": [
		      {"number": 1, "arab": "إنما الأعمال بالنيات", "id": "x"},
		      {"number": 2, "arab": "...", "id": "y"}
		    ]
		  }
		}`))
	})

	hadiths, err := c.Range(context.Background(), "bukhari", 1, 2)
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if gotPath != "/books/bukhari?range=1-2" {
		t.Fatalf("request path = %s", gotPath)
	}
	if len(hadiths) != 2 || hadiths[0].Number != 1 {
		t.Fatalf("hadiths = %+v", hadiths)
	}
	if hadiths[0].Arabic != "إنما الأعمال بالنيات" {
		t.Fatalf("arabic text = %q", hadiths[0].Arabic)
	}
}

func TestRangeClampsToBookTotal(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		_, _ = w.Write([]byte(`{"code": 200, "data": {"hadiths": []}}`))
	})

	if _, err := c.Range(context.Background(), "malik", 1840, 9999); err != nil {
		t.Fatalf("Range: %v", err)
	}
	if gotPath != "/books/malik?range=1840-1849" {
		t.Fatalf("request path = %s, want range clamped to 1849", gotPath)
	}
}

func TestRangeRejectsBadInput(t *testing.T) {
	c := NewClient()
	if _, err := c.Range(context.Background(), "nope", 1, 5); err == nil {
		t.Fatal("expected error for unknown book")
	}
	if _, err := c.Range(context.Background(), "muslim", 5, 1); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if _, err := c.Range(context.Background(), "muslim", 0, 5); err == nil {
		t.Fatal("expected error for start below 1")
	}
}

func TestRangeBadCode(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code": 404, "data": {}}`))
	})
	if _, err := c.Range(context.Background(), "bukhari", 1, 2); !errors.Is(err, ErrBadStatus) {
		t.Fatalf("err = %v, want ErrBadStatus", err)
	}
}
