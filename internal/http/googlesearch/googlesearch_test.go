package googlesearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestScrapeWithoutCredentials(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	tests := []struct {
		name     string
		apiKey   string
		engineID string
	}{
		{"no key", "", "engine"},
		{"no engine", "key", ""},
		{"neither", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.apiKey, tt.engineID)
			c.BaseURL = server.URL

			result := c.Scrape(context.Background())

			if result.Success {
				t.Error("expected Success=false without credentials")
			}
			if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "GOOGLE_API_KEY") {
				t.Errorf("Errors = %v, want GOOGLE_API_KEY setup steps", result.Errors)
			}
		})
	}

	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("made %d network calls, want 0", got)
	}
}

func TestSearchFiltersAggregatorDomains(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"title": "Brixton FC", "link": "https://www.brixtonfc.example.com/", "snippet": "Football club in Lambeth."},
				{"title": "Football - Wikipedia", "link": "https://en.wikipedia.org/wiki/Football", "snippet": "Football is a sport."},
				{"title": "Best clubs", "link": "https://www.timeout.com/london/sport", "snippet": "Listicle."},
				{"title": "Brixton FC", "link": "https://www.brixtonfc.example.com/", "snippet": "Duplicate."},
			},
		})
	}))
	defer server.Close()

	c := NewClient("key", "engine")
	c.BaseURL = server.URL
	c.Client = server.Client()
	c.Delay = time.Millisecond

	results, err := c.search(context.Background())
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 after domain filter and dedupe", len(results))
	}
	if results[0].Link != "https://www.brixtonfc.example.com/" {
		t.Errorf("Link = %q", results[0].Link)
	}
}

func TestSearchStopsOnQuotaExceeded(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"title": "Kept Club", "link": "https://kept.example.com/", "snippet": "Football."},
				},
			})
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "quota exceeded"},
		})
	}))
	defer server.Close()

	c := NewClient("key", "engine")
	c.BaseURL = server.URL
	c.Client = server.Client()
	c.Delay = time.Millisecond

	results, err := c.search(context.Background())
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(results) != 1 {
		t.Errorf("got %d results, want the 1 collected before the quota error", len(results))
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("made %d calls, want 2 (stop on first 429)", got)
	}
}

func TestTransform(t *testing.T) {
	got := Transform(Result{
		Title:   "Shoreditch Tennis Academy - Coaching & Courts in East London",
		Link:    "https://www.shoreditchtennis.example.com/",
		Snippet: "Tennis coaching for adults and juniors in Hackney.",
		Phone:   "020 7123 4567",
	})

	if got.Name != "Shoreditch Tennis Academy" {
		t.Errorf("Name = %q, want suffix stripped", got.Name)
	}
	if got.Sport != "Tennis" {
		t.Errorf("Sport = %q, want Tennis", got.Sport)
	}
	if got.Borough != "Hackney" {
		t.Errorf("Borough = %q, want Hackney (from snippet text)", got.Borough)
	}
	if got.Contact != "020 7123 4567" {
		t.Errorf("Contact = %q, want phone over link", got.Contact)
	}
	if got.Venue != "See website for location" {
		t.Errorf("Venue = %q", got.Venue)
	}
	if !strings.HasPrefix(got.ExternalID, "google_") {
		t.Errorf("ExternalID = %q, want google_ prefix", got.ExternalID)
	}
}

func TestTransformEmailWinsOverPhone(t *testing.T) {
	got := Transform(Result{
		Title:   "Highbury Padel Club",
		Link:    "https://www.highburypadel.example.com/",
		Snippet: "Padel in Islington.",
		Phone:   "020 7123 4567",
		Email:   "info@highburypadel.example.com",
	})

	if got.Contact != "info@highburypadel.example.com" {
		t.Errorf("Contact = %q, want email first", got.Contact)
	}
}

func TestExternalIDDeterministic(t *testing.T) {
	a := Transform(Result{Title: "Club", Link: "https://www.example.com/club"})
	b := Transform(Result{Title: "Club", Link: "https://www.example.com/club"})

	if a.ExternalID != b.ExternalID {
		t.Errorf("same URL produced %q and %q", a.ExternalID, b.ExternalID)
	}
}

func TestScrapeSamples(t *testing.T) {
	c := NewClient("", "")
	result := c.ScrapeSamples()

	if !result.Success {
		t.Fatal("sample scrape should always succeed")
	}
	if result.GroupsFound != 10 {
		t.Errorf("GroupsFound = %d, want 10", result.GroupsFound)
	}
	for _, g := range result.Groups {
		if !strings.HasPrefix(g.ExternalID, "google_") {
			t.Errorf("ExternalID = %q, want google_ prefix", g.ExternalID)
		}
	}
}
