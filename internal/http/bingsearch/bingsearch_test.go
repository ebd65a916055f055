package bingsearch

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
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "BING_API_KEY") {
		t.Errorf("Errors = %v, want BING_API_KEY setup steps", result.Errors)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("made %d network calls, want 0", got)
	}
}

func TestSearchSendsSubscriptionKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Ocp-Apim-Subscription-Key"); got != "secret" {
			t.Errorf("subscription key header = %q, want secret", got)
		}
		if got := r.URL.Query().Get("mkt"); got != "en-GB" {
			t.Errorf("mkt = %q, want en-GB", got)
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

func TestSearchFiltersSocialAndAggregatorDomains(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{WebPages: struct {
			Value []Result `json:"value"`
		}{Value: []Result{
			{Name: "Brixton FC", URL: "https://www.brixtonfc.example.com/", Snippet: "Football club in Lambeth."},
			{Name: "Club on LinkedIn", URL: "https://www.linkedin.com/company/club", Snippet: "Profile."},
			{Name: "Club on Instagram", URL: "https://www.instagram.com/club/", Snippet: "Photos."},
			{Name: "Brixton FC", URL: "https://www.brixtonfc.example.com/", Snippet: "Duplicate."},
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
		t.Fatalf("got %d results, want 1 after filtering and dedupe", len(results))
	}
}

func TestSearchStopsOnRateLimit(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			json.NewEncoder(w).Encode(searchResponse{WebPages: struct {
				Value []Result `json:"value"`
			}{Value: []Result{
				{Name: "Kept Club", URL: "https://kept.example.com/", Snippet: "Football."},
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

func TestTransform(t *testing.T) {
	got := Transform(Result{
		Name:    "Peckham Cycling Club | Road & Gravel Rides",
		URL:     "https://www.peckhamcc.example.com/",
		Snippet: "South East London cycling club with weekend club runs.",
	})

	if got.Name != "Peckham Cycling Club" {
		t.Errorf("Name = %q, want suffix stripped", got.Name)
	}
	if got.Sport != "Cycling" {
		t.Errorf("Sport = %q, want Cycling", got.Sport)
	}
	if got.Contact != "https://www.peckhamcc.example.com/" {
		t.Errorf("Contact = %q, want the site URL", got.Contact)
	}
	if !strings.HasPrefix(got.ExternalID, "bing_") {
		t.Errorf("ExternalID = %q, want bing_ prefix", got.ExternalID)
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
		if !strings.HasPrefix(g.ExternalID, "bing_") {
			t.Errorf("ExternalID = %q, want bing_ prefix", g.ExternalID)
		}
	}
}
