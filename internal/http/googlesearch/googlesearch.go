// Package googlesearch discovers London sports club websites through
// the Google Custom Search JSON API.
package googlesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ldnsports/ldnsports_api/internal/classify"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var searchQueries = []string{
	"football club",
	"soccer club",
	"basketball club",
	"tennis club",
	"badminton club",
	"running club",
	"padel club",
	"cricket club",
	"rugby club",
	"cycling club",
	"swimming club",
	"yoga studio",
	"climbing gym",
}

// Aggregator and directory domains that never host a club's own site.
var skipDomains = []string{
	"wikipedia.org",
	"tripadvisor.",
	"yelp.",
	"yell.com",
	"timeout.com",
	"london.gov.uk",
	"facebook.com",
	"meetup.com",
}

// Client handles communication with the Custom Search API.
type Client struct {
	APIKey         string
	SearchEngineID string
	BaseURL        string
	Client         *http.Client
	Delay          time.Duration
}

func NewClient(apiKey, searchEngineID string) *Client {
	return &Client{
		APIKey:         apiKey,
		SearchEngineID: searchEngineID,
		Client:         &http.Client{Timeout: 30 * time.Second},
		Delay:          500 * time.Millisecond,
	}
}

// Result is a raw search hit before normalization.
type Result struct {
	Title   string
	Link    string
	Snippet string
	Phone   string
	Email   string
}

// service builds the API client. WithHTTPClient cannot be combined
// with WithAPIKey, so the overridden-endpoint path used in tests skips
// key auth entirely.
func (c *Client) service(ctx context.Context) (*customsearch.Service, error) {
	if c.BaseURL != "" {
		return customsearch.NewService(ctx,
			option.WithEndpoint(c.BaseURL),
			option.WithHTTPClient(c.Client),
		)
	}
	return customsearch.NewService(ctx, option.WithAPIKey(c.APIKey))
}

// Scrape runs one full query sweep. Missing credentials short-circuit
// before any network call.
func (c *Client) Scrape(ctx context.Context) model.ScrapeResult {
	if c.APIKey == "" || c.SearchEngineID == "" {
		return model.ScrapeResult{
			Success: false,
			Groups:  []model.Candidate{},
			Errors: []string{
				"GOOGLE_API_KEY and GOOGLE_SEARCH_ENGINE_ID environment variables are required.",
				"To set up Google Custom Search:",
				"1. Get an API key at https://console.cloud.google.com/apis/credentials",
				"2. Create a Programmable Search Engine at https://programmablesearchengine.google.com/",
				"3. Set GOOGLE_API_KEY and GOOGLE_SEARCH_ENGINE_ID in your environment variables",
			},
		}
	}

	results, err := c.search(ctx)
	if err != nil {
		return model.ScrapeResult{
			Success: false,
			Groups:  []model.Candidate{},
			Errors:  []string{fmt.Sprintf("Scraper error: %v", err)},
		}
	}

	candidates := make([]model.Candidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, Transform(r))
	}

	return model.ScrapeResult{
		Success:     true,
		GroupsFound: len(candidates),
		Groups:      candidates,
		Errors:      []string{},
	}
}

func (c *Client) search(ctx context.Context) ([]Result, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating search service: %w", err)
	}

	var results []Result
	seen := make(map[string]bool)

	for _, query := range searchQueries {
		call := svc.Cse.List().
			Context(ctx).
			Cx(c.SearchEngineID).
			Q(query + " London").
			Num(10).
			Gl("uk").
			Cr("countryUK")

		resp, err := call.Do()
		if err != nil {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
				// Daily quota exhausted, keep what we have.
				log.Printf("Google Search API: quota exceeded at %q, stopping", query)
				break
			}
			log.Printf("Google Search API error for %q: %v", query, err)
			continue
		}

		for _, item := range resp.Items {
			if item.Link == "" || seen[item.Link] {
				continue
			}
			if skipDomain(item.Link) {
				continue
			}
			seen[item.Link] = true

			r := Result{
				Title:   item.Title,
				Link:    item.Link,
				Snippet: item.Snippet,
			}
			r.Phone, r.Email = pagemapContacts(item)
			results = append(results, r)
		}

		select {
		case <-ctx.Done():
			return results, ctx.Err()
		case <-time.After(c.Delay):
		}
	}

	return results, nil
}

func skipDomain(link string) bool {
	lower := strings.ToLower(link)
	for _, d := range skipDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// pagemapContacts digs phone and email out of the structured pagemap
// organization block when the site publishes one.
func pagemapContacts(item *customsearch.Result) (phone, email string) {
	if len(item.Pagemap) == 0 {
		return "", ""
	}
	var pagemap struct {
		Organization []struct {
			Telephone string `json:"telephone"`
			Email     string `json:"email"`
		} `json:"organization"`
	}
	if err := json.Unmarshal(item.Pagemap, &pagemap); err != nil {
		return "", ""
	}
	if len(pagemap.Organization) > 0 {
		return pagemap.Organization[0].Telephone, pagemap.Organization[0].Email
	}
	return "", ""
}

// Transform normalizes a raw search result into a candidate listing.
func Transform(r Result) model.Candidate {
	name := util.CleanTitle(r.Title)
	sport := classify.DetectSport(name, r.Snippet)
	borough := classify.DetectBoroughFromText(name + " " + r.Snippet)

	contact := r.Link
	switch {
	case r.Email != "":
		contact = r.Email
	case r.Phone != "":
		contact = r.Phone
	}

	description := util.CleanDescription(r.Snippet, 500)
	if description == "" {
		description = fmt.Sprintf("%s - a %s club in %s.", name, strings.ToLower(sport), borough)
	}

	return model.Candidate{
		Sport:       sport,
		Borough:     borough,
		Name:        name,
		Venue:       "See website for location",
		Area:        borough,
		Level:       "Mixed",
		Description: description,
		Contact:     contact,
		SourceURL:   r.Link,
		ExternalID:  "google_" + util.IDFromURL(r.Link),
	}
}

// ScrapeSamples returns the fixed sample list in place of a live sweep.
func (c *Client) ScrapeSamples() model.ScrapeResult {
	samples := Samples()
	candidates := make([]model.Candidate, 0, len(samples))
	for _, r := range samples {
		candidates = append(candidates, Transform(r))
	}

	return model.ScrapeResult{
		Success:     true,
		GroupsFound: len(candidates),
		Groups:      candidates,
		Errors:      []string{},
	}
}
