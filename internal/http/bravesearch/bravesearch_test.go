package bravesearch

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

func TestScrapeWithoutKey(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	c := NewClient("")
	c.BaseURL = server.URL

	result := c.Scrape(context.Background())

	if result.Success {
		t.Error("expected Success=false without an API key")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "BRAVE_API_KEY") {
		t.Errorf("Errors = %v, want BRAVE_API_KEY setup steps", result.Errors)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("made %d network calls, want 0", got)
	}
}

func TestSearchSendsSubscriptionToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Subscription-Token"); got != "secret" {
			t.Errorf("subscription token header = %q, want secret", got)
		}
		if got := r.URL.Query().Get("country"); got != "GB" {
			t.Errorf("country = %q, want GB", got)
		}
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer server.Close()

	c := NewClient("secret")
	c.BaseURL = server.URL
	c.Client = server.Client()
	c.Delay = time.Millisecond

	if _, err := c.search(context.Background()); err != nil {
		t.Fatalf("search: %v", err)
	}
}

func TestSearchStopsOnRateLimit(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			json.NewEncoder(w).Encode(searchResponse{Web: struct {
				Results []Result `json:"results"`
			}{Results: []Result{
				{Title: "Kept Club", URL: "https://kept.example.com/", Description: "Football."},
			}}})
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClient("key")
	c.BaseURL = server.URL
	c.Client = server.Client()
	c.Delay = time.Millisecond

	results, err := c.search(context.Background())
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(results) != 1 {
		t.Errorf("got %d results, want the 1 collected before the rate limit", len(results))
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("made %d calls, want 2 (stop on first 429)", got)
	}
}

func TestSearchFiltersAggregatorDomains(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{Web: struct {
			Results []Result `json:"results"`
		}{Results: []Result{
			{Title: "Brixton FC", URL: "https://www.brixtonfc.example.com/", Description: "Football club."},
			{Title: "Football - Wikipedia", URL: "https://en.wikipedia.org/wiki/Football", Description: "A sport."},
			{Title: "Club tweets", URL: "https://twitter.com/club", Description: "Tweets."},
		}}})
	}))
	defer server.Close()

	c := NewClient("key")
	c.BaseURL = server.URL
	c.Client = server.Client()
	c.Delay = time.Millisecond

	results, err := c.search(context.Background())
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 after domain filter", len(results))
	}
}

func TestTransform(t *testing.T) {
	got := Transform(Result{
		Title:       "Battersea Climbing Wall - Bouldering in Wandsworth",
		URL:         "https://www.batterseaclimbing.example.com/",
		Description: "Indoor bouldering centre in Wandsworth.",
	})

	if got.Name != "Battersea Climbing Wall" {
		t.Errorf("Name = %q, want suffix stripped", got.Name)
	}
	if got.Sport != "Climbing" {
		t.Errorf("Sport = %q, want Climbing", got.Sport)
	}
	if got.Borough != "Wandsworth" {
		t.Errorf("Borough = %q, want Wandsworth (from text)", got.Borough)
	}
	if !strings.HasPrefix(got.ExternalID, "brave_") {
		t.Errorf("ExternalID = %q, want brave_ prefix", got.ExternalID)
	}
}

func TestScrapeSamples(t *testing.T) {
	c := NewClient("")
	result := c.ScrapeSamples()

	if !result.Success {
		t.Fatal("sample scrape should always succeed")
	}
	if result.GroupsFound != 10 {
		t.Errorf("GroupsFound = %d, want 10", result.GroupsFound)
	}
	for _, g := range result.Groups {
		if !strings.HasPrefix(g.ExternalID, "brave_") {
			t.Errorf("ExternalID = %q, want brave_ prefix", g.ExternalID)
		}
	}
}
