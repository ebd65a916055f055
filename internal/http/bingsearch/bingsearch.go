// Package bingsearch discovers London sports club websites through the
// Bing Web Search v7 API.
package bingsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/ldnsports/ldnsports_api/internal/classify"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
)

const defaultSearchURL = "https://api.bing.microsoft.com/v7.0/search"

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

// Aggregator, directory and social domains that never host a club's
// own site.
var skipDomains = []string{
	"wikipedia.org",
	"tripadvisor.",
	"yelp.",
	"yell.com",
	"timeout.com",
	"london.gov.uk",
	"facebook.com",
	"meetup.com",
	"linkedin.com",
	"twitter.com",
	"instagram.com",
}

// Client handles communication with the Bing Web Search API.
type Client struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
	Delay   time.Duration
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultSearchURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
		Delay:   500 * time.Millisecond,
	}
}

type searchParams struct {
	Query          string `url:"q"`
	Count          int    `url:"count"`
	Market         string `url:"mkt"`
	ResponseFilter string `url:"responseFilter"`
}

// Result is a raw search hit before normalization.
type Result struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Snippet    string `json:"snippet"`
	DisplayURL string `json:"displayUrl"`
}

type searchResponse struct {
	WebPages struct {
		Value []Result `json:"value"`
	} `json:"webPages"`
}

// Scrape runs one full query sweep. A missing API key short-circuits
// before any network call.
func (c *Client) Scrape(ctx context.Context) model.ScrapeResult {
	if c.APIKey == "" {
		return model.ScrapeResult{
			Success: false,
			Groups:  []model.Candidate{},
			Errors: []string{
				"BING_API_KEY environment variable is not set.",
				"To get an API key:",
				"1. Create a Bing Search resource at https://portal.azure.com/",
				"2. Copy one of the subscription keys from the resource",
				"3. Set BING_API_KEY in your environment variables",
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
	var results []Result
	seen := make(map[string]bool)

	for _, q := range searchQueries {
		params, err := query.Values(searchParams{
			Query:          q + " London UK",
			Count:          20,
			Market:         "en-GB",
			ResponseFilter: "Webpages",
		})
		if err != nil {
			return nil, fmt.Errorf("encoding search params: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.BaseURL+"?"+params.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("creating search request: %w", err)
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.APIKey)

		resp, err := c.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing search request: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading search response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			// Quota exhausted, keep what we have.
			log.Printf("Bing API: rate limit reached at %q, stopping", q)
			break
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("Bing API error for %q: %d %s", q, resp.StatusCode, string(body))
			continue
		}

		var parsed searchResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			log.Printf("Bing API: decoding response for %q: %v", q, err)
			continue
		}

		for _, page := range parsed.WebPages.Value {
			if page.URL == "" || seen[page.URL] {
				continue
			}
			if skipDomain(page.URL) {
				continue
			}
			seen[page.URL] = true
			results = append(results, page)
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

// Transform normalizes a raw search result into a candidate listing.
func Transform(r Result) model.Candidate {
	name := util.CleanTitle(r.Name)
	sport := classify.DetectSport(name, r.Snippet)
	borough := classify.DetectBoroughFromText(name + " " + r.Snippet)

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
		Contact:     r.URL,
		SourceURL:   r.URL,
		ExternalID:  "bing_" + util.IDFromURL(r.URL),
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
