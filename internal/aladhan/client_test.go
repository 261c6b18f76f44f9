package aladhan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const timingsPayload = `{
  "code": 200,
  "data": {
    "timings": {
      "Fajr": "04:45", "Sunrise": "06:15", "Dhuhr": "12:05",
      "Asr": "15:25", "Maghrib": "17:55", "Isha": "19:15"
    },
    "date": {
      "hijri": {
        "day": "15",
        "year": "1445",
        "month": {"number": 12, "en": "Dhu al-Hijjah", "ar": "ذو الحجة"},
        "weekday": {"en": "Al Thulatha", "ar": "الثلاثاء"}
      }
    }
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{baseURL: srv.URL, http: srv.Client()}
}

func TestTimingsByCity(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		_, _ = w.Write([]byte(timingsPayload))
	})

	timings, hijri, err := c.TimingsByCity(context.Background(), "Cairo", "Egypt", 5)
	if err != nil {
		t.Fatalf("TimingsByCity: %v", err)
	}

	if !strings.HasPrefix(gotPath, "/timingsByCity?") {
		t.Fatalf("request path = %s", gotPath)
	}
	for _, want := range []string{"city=Cairo", "country=Egypt", "method=5"} {
		if !strings.Contains(gotPath, want) {
			t.Fatalf("request path %s missing %s", gotPath, want)
		}
	}

	if timings.Fajr != "04:45" || timings.Isha != "19:15" {
		t.Fatalf("timings = %+v", timings)
	}
	if hijri.Day != 15 || hijri.Month != 12 || hijri.Year != 1445 {
		t.Fatalf("hijri = %+v", hijri)
	}
	if hijri.MonthAr != "ذو الحجة" {
		t.Fatalf("hijri month ar = %q", hijri.MonthAr)
	}
}

func TestTimingsByCityBadCode(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code": 500, "data": {}}`))
	})

	if _, _, err := c.TimingsByCity(context.Background(), "Cairo", "Egypt", 5); err == nil {
		t.Fatal("expected error for non-200 payload code")
	}
}

func TestHijriFor(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{
		  "code": 200,
		  "data": {"hijri": {
		    "day": "01", "year": "1446",
		    "month": {"number": 1, "en": "Muharram", "ar": "محرم"},
		    "weekday": {"en": "Al Ahad", "ar": "الأحد"}
		  }}
		}`))
	})

	date := time.Date(2024, 7, 7, 0, 0, 0, 0, time.Local)
	hijri, err := c.HijriFor(context.Background(), date)
	if err != nil {
		t.Fatalf("HijriFor: %v", err)
	}
	if gotPath != "/gToH/07-07-2024" {
		t.Fatalf("request path = %s, want /gToH/07-07-2024", gotPath)
	}
	if hijri.Year != 1446 || hijri.MonthEn != "Muharram" {
		t.Fatalf("hijri = %+v", hijri)
	}
}

func TestFetchDayCarriesPartialError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	data := c.FetchDay(context.Background(), "Cairo", "Egypt", 5)
	if data.Err == nil {
		t.Fatal("expected Err on upstream failure")
	}
	if data.FetchedAt.IsZero() {
		t.Fatal("FetchedAt not set")
	}
}
