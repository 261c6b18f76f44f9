package quran

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSurahTableOrdered(t *testing.T) {
	if len(Surahs) != 114 {
		t.Fatalf("len(Surahs) = %d, want 114", len(Surahs))
	}
	prev := 0
	for i, s := range Surahs {
		if s.Number != i+1 {
			t.Fatalf("surah %d numbered %d", i+1, s.Number)
		}
		if s.StartPage < prev {
			t.Fatalf("surah %d start page %d before previous %d", s.Number, s.StartPage, prev)
		}
		if s.StartPage < 1 || s.StartPage > TotalPages {
			t.Fatalf("surah %d start page %d out of range", s.Number, s.StartPage)
		}
		prev = s.StartPage
	}
}

func TestSurahForPage(t *testing.T) {
	tests := []struct {
		page int
		want int
	}{
		{1, 1},    // al-Fatiha
		{2, 2},    // al-Baqara starts
		{49, 2},   // last al-Baqara page
		{50, 3},   // Aal Imran starts
		{587, 82}, // al-Infitar and al-Mutaffifin share a start page
		{604, 114},
	}
	for _, tt := range tests {
		s, ok := SurahForPage(tt.page)
		if !ok {
			t.Fatalf("SurahForPage(%d) not ok", tt.page)
		}
		if s.Number != tt.want {
			t.Errorf("SurahForPage(%d) = %d, want %d", tt.page, s.Number, tt.want)
		}
	}
	if _, ok := SurahForPage(0); ok {
		t.Error("SurahForPage(0) should fail")
	}
	if _, ok := SurahForPage(TotalPages + 1); ok {
		t.Error("SurahForPage past last page should fail")
	}
}

func TestJuzForPage(t *testing.T) {
	tests := []struct {
		page, want int
	}{
		{1, 1}, {21, 1}, {22, 2}, {302, 16}, {582, 30}, {604, 30},
	}
	for _, tt := range tests {
		if got := JuzForPage(tt.page); got != tt.want {
			t.Errorf("JuzForPage(%d) = %d, want %d", tt.page, got, tt.want)
		}
	}
	for juz := 1; juz <= 30; juz++ {
		if got := JuzForPage(JuzStartPage(juz)); got != juz {
			t.Errorf("JuzForPage(JuzStartPage(%d)) = %d", juz, got)
		}
	}
}

func TestVerseMark(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"2:255", "﴿٢٥٥﴾"},
		{"1:1", "﴿١﴾"},
		{"18:10", "﴿١٠﴾"},
		{"garbage", ""},
		{"2:x", ""},
	}
	for _, tt := range tests {
		if got := VerseMark(tt.key); got != tt.want {
			t.Errorf("VerseMark(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{baseURL: srv.URL, http: srv.Client()}
}

func TestPageVerses(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		_, _ = w.Write([]byte(`{"verses": [
		  {"id": 1, "verse_key": "1:1", "text_uthmani": "بِسْمِ ٱللَّهِ ٱلرَّحْمَـٰنِ ٱلرَّحِيمِ"},
		  {"id": 2, "verse_key": "1:2", "text_uthmani": "ٱلْحَمْدُ لِلَّهِ رَبِّ ٱلْعَـٰلَمِينَ"}
		]}`))
	})

	verses, err := c.PageVerses(context.Background(), 1)
	if err != nil {
		t.Fatalf("PageVerses: %v", err)
	}
	if gotPath != "/quran/verses/uthmani?page_number=1" {
		t.Fatalf("request path = %s", gotPath)
	}
	if len(verses) != 2 {
		t.Fatalf("got %d verses, want 2", len(verses))
	}
	if verses[0].Key != "1:1" || verses[1].ID != 2 {
		t.Fatalf("verses = %+v", verses)
	}
}

func TestPageVersesOutOfRange(t *testing.T) {
	c := NewClient()
	if _, err := c.PageVerses(context.Background(), 0); err == nil {
		t.Fatal("expected error for page 0")
	}
	if _, err := c.PageVerses(context.Background(), TotalPages+1); err == nil {
		t.Fatal("expected error past last page")
	}
}

func TestPageVersesEmpty(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"verses": []}`))
	})
	if _, err := c.PageVerses(context.Background(), 5); err == nil {
		t.Fatal("expected error for empty page")
	}
}
