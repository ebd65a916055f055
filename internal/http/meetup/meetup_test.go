package meetup

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

func TestScrapeWithoutToken(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	c := NewClient("")
	c.BaseURL = server.URL

	result := c.Scrape(context.Background())

	if result.Success {
		t.Error("expected Success=false without an access token")
	}
	if len(result.Errors) == 0 {
		t.Error("expected setup instructions in Errors")
	}
	if !strings.Contains(result.Errors[0], "MEETUP_ACCESS_TOKEN") {
		t.Errorf("first error = %q, want mention of MEETUP_ACCESS_TOKEN", result.Errors[0])
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("made %d network calls, want 0", got)
	}
}

func TestSearchDedupesAndFiltersByCountry(t *testing.T) {
	node := func(id, name, country string) map[string]any {
		return map[string]any{
			"node": map[string]any{
				"id":      id,
				"name":    name,
				"country": country,
				"urlname": "test-group",
				"city":    "Hackney",
				"lat":     51.54,
				"lon":     -0.06,
			},
		}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"data": map[string]any{
				"keywordSearch": map[string]any{
					"edges": []any{
						node("g1", "London Kickabout", "GB"),
						node("g1", "London Kickabout", "GB"),
						node("g2", "Paris Petanque", "FR"),
						node("g3", "Hackney Hoops", "GB"),
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient("token")
	c.BaseURL = server.URL
	c.Client = server.Client()
	c.Delay = time.Millisecond

	groups, err := c.search(context.Background())
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2 (dedupe + country filter)", len(groups))
	}
	for _, g := range groups {
		if g.Country != "GB" {
			t.Errorf("non-GB group %q survived the filter", g.Name)
		}
	}
}

func TestSearchSkipsFailedKeywords(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n%2 == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer server.Close()

	c := NewClient("token")
	c.BaseURL = server.URL
	c.Client = server.Client()
	c.Delay = time.Millisecond

	if _, err := c.search(context.Background()); err != nil {
		t.Fatalf("search should tolerate per-keyword failures, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != int32(len(sportsKeywords)) {
		t.Errorf("made %d calls, want one per keyword (%d)", got, len(sportsKeywords))
	}
}

func TestTransform(t *testing.T) {
	got := Transform(Group{
		ID:          "abc123",
		Name:        "London Fields Football",
		Description: "<p>Casual games in Hackney.</p>",
		Link:        "https://www.meetup.com/london-fields-football/",
		City:        "Hackney",
		Lat:         51.5410,
		Lon:         -0.0613,
		MemberCount: 234,
	})

	if got.Sport != "Football" {
		t.Errorf("Sport = %q, want Football", got.Sport)
	}
	if got.Borough != "Hackney" {
		t.Errorf("Borough = %q, want Hackney", got.Borough)
	}
	if got.ExternalID != "meetup_abc123" {
		t.Errorf("ExternalID = %q, want meetup_abc123", got.ExternalID)
	}
	if got.Level != "Mixed" {
		t.Errorf("Level = %q, want Mixed", got.Level)
	}
	if strings.Contains(got.Description, "<p>") {
		t.Errorf("Description still contains HTML: %q", got.Description)
	}
	if !strings.HasPrefix(got.Contact, "Join via Meetup: ") {
		t.Errorf("Contact = %q, want meetup join link", got.Contact)
	}
}

func TestTransformFallbackDescription(t *testing.T) {
	got := Transform(Group{
		ID:          "x",
		Name:        "Camden Runners",
		Link:        "https://www.meetup.com/camden-runners/",
		City:        "Camden",
		MemberCount: 50,
	})

	if got.Description == "" {
		t.Fatal("expected generated fallback description")
	}
	if !strings.Contains(got.Description, "50 members") {
		t.Errorf("Description = %q, want member count in fallback", got.Description)
	}
}

func TestScrapeSamples(t *testing.T) {
	c := NewClient("")
	result := c.ScrapeSamples()

	if !result.Success {
		t.Fatal("sample scrape should always succeed")
	}
	if result.GroupsFound != 12 {
		t.Errorf("GroupsFound = %d, want 12", result.GroupsFound)
	}
	for _, g := range result.Groups {
		if !strings.HasPrefix(g.ExternalID, "meetup_sample_") {
			t.Errorf("ExternalID = %q, want meetup_sample_ prefix", g.ExternalID)
		}
	}
}
