// Package facebook pulls candidate sports clubs from the Facebook
// Graph API place search. The Groups API was deprecated in April 2024,
// so club Pages are searched instead.
package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ldnsports/ldnsports_api/internal/classify"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
)

const defaultGraphAPIBase = "https://graph.facebook.com/v22.0"

// Graph API error codes with special handling.
const (
	errCodeInvalidToken = 190
	errCodeRateLimit    = 4
)

var sportsKeywords = []string{
	"football",
	"soccer",
	"basketball",
	"tennis",
	"badminton",
	"running",
	"padel",
	"cricket",
	"rugby",
	"cycling",
	"swimming",
	"yoga",
	"climbing",
}

var ukCountries = map[string]bool{
	"united kingdom": true,
	"uk":             true,
	"gb":             true,
	"england":        true,
}

// Client handles communication with the Facebook Graph API.
type Client struct {
	AccessToken string
	BaseURL     string
	Client      *http.Client
	Delay       time.Duration
	// RateLimitWait is how long to back off after a code-4 throttling
	// error before moving to the next keyword.
	RateLimitWait time.Duration
}

func NewClient(accessToken string) *Client {
	return &Client{
		AccessToken:   accessToken,
		BaseURL:       defaultGraphAPIBase,
		Client:        &http.Client{Timeout: 30 * time.Second},
		Delay:         500 * time.Millisecond,
		RateLimitWait: 5 * time.Second,
	}
}

// Page is a raw Graph API place result before normalization.
type Page struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	About       string    `json:"about,omitempty"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	Location    *Location `json:"location,omitempty"`
	FanCount    int       `json:"fan_count,omitempty"`
	Category    string    `json:"category,omitempty"`
	Website     string    `json:"website,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Emails      []string  `json:"emails,omitempty"`
}

type Location struct {
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Street    string  `json:"street,omitempty"`
}

type searchResponse struct {
	Data []Page `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Scrape runs one full keyword sweep. A missing access token
// short-circuits before any network call.
func (c *Client) Scrape(ctx context.Context) model.ScrapeResult {
	if c.AccessToken == "" {
		return model.ScrapeResult{
			Success: false,
			Groups:  []model.Candidate{},
			Errors: []string{
				"FACEBOOK_ACCESS_TOKEN environment variable is not set.",
				"To get an access token:",
				"1. Create an app at https://developers.facebook.com/",
				"2. Generate a User Access Token with pages_read_engagement permission",
				"3. Set FACEBOOK_ACCESS_TOKEN in your environment variables",
				"",
				"Note: Facebook Groups API was deprecated in April 2024.",
				"This scraper uses the Places Search API for Pages instead.",
			},
		}
	}

	pages, err := c.search(ctx)
	if err != nil {
		return model.ScrapeResult{
			Success: false,
			Groups:  []model.Candidate{},
			Errors:  []string{fmt.Sprintf("Scraper error: %v", err)},
		}
	}

	candidates := make([]model.Candidate, 0, len(pages))
	for _, p := range pages {
		candidates = append(candidates, Transform(p))
	}

	return model.ScrapeResult{
		Success:     true,
		GroupsFound: len(candidates),
		Groups:      candidates,
		Errors:      []string{},
	}
}

func (c *Client) search(ctx context.Context) ([]Page, error) {
	var pages []Page
	seen := make(map[string]bool)

	for _, keyword := range sportsKeywords {
		params := url.Values{}
		params.Set("type", "place")
		params.Set("q", keyword+" club London")
		params.Set("center", "51.5074,-0.1278")
		params.Set("distance", "40000")
		params.Set("fields", "id,name,about,description,link,location,fan_count,category,website,phone,emails")
		params.Set("access_token", c.AccessToken)
		params.Set("limit", "50")

		fullURL := fmt.Sprintf("%s/search?%s", c.BaseURL, params.Encode())

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating search request: %w", err)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing search request: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading search response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			var errResp errorResponse
			_ = json.Unmarshal(body, &errResp)

			switch errResp.Error.Code {
			case errCodeInvalidToken:
				log.Println("Facebook API: access token expired or invalid")
				continue
			case errCodeRateLimit:
				log.Printf("Facebook API: rate limit reached for %q", keyword)
				select {
				case <-ctx.Done():
					return pages, ctx.Err()
				case <-time.After(c.RateLimitWait):
				}
				continue
			}

			log.Printf("Facebook API error for %q: %d %s", keyword, resp.StatusCode, string(body))
			continue
		}

		var parsed searchResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			log.Printf("Facebook API: decoding response for %q: %v", keyword, err)
			continue
		}

		for _, page := range parsed.Data {
			if page.ID == "" || seen[page.ID] {
				continue
			}
			if page.Location != nil && page.Location.Country != "" &&
				!ukCountries[strings.ToLower(page.Location.Country)] {
				continue
			}

			seen[page.ID] = true
			if page.Link == "" {
				page.Link = "https://www.facebook.com/" + page.ID
			}
			pages = append(pages, page)
		}

		select {
		case <-ctx.Done():
			return pages, ctx.Err()
		case <-time.After(c.Delay):
		}
	}

	return pages, nil
}

// Transform normalizes a raw Facebook page into a candidate listing.
func Transform(p Page) model.Candidate {
	description := p.About
	if description == "" {
		description = p.Description
	}

	city := "London"
	lat, lon := 51.5074, -0.1278
	venue := "London"
	if p.Location != nil {
		if p.Location.City != "" {
			city = p.Location.City
			venue = p.Location.City
		}
		if p.Location.Latitude != 0 || p.Location.Longitude != 0 {
			lat, lon = p.Location.Latitude, p.Location.Longitude
		}
		if p.Location.Street != "" {
			venue = p.Location.Street
		}
	}

	sport := classify.DetectSport(p.Name, description)
	borough := classify.DetectBorough(city, lat, lon)

	// Preference order: website, first email, phone, page link.
	contact := p.Link
	switch {
	case p.Website != "":
		contact = p.Website
	case len(p.Emails) > 0:
		contact = p.Emails[0]
	case p.Phone != "":
		contact = p.Phone
	}

	shortDescription := util.CleanDescription(description, 500)
	if shortDescription == "" {
		shortDescription = fmt.Sprintf("%s - a %s club in %s.", p.Name, strings.ToLower(sport), borough)
	}

	return model.Candidate{
		Sport:       sport,
		Borough:     borough,
		Name:        p.Name,
		Venue:       venue,
		Area:        borough,
		Level:       "Mixed",
		Description: shortDescription,
		Contact:     contact,
		SourceURL:   p.Link,
		ExternalID:  "facebook_" + p.ID,
	}
}

// ScrapeSamples returns the fixed sample list in place of a live sweep.
func (c *Client) ScrapeSamples() model.ScrapeResult {
	samples := Samples()
	candidates := make([]model.Candidate, 0, len(samples))
	for _, p := range samples {
		candidates = append(candidates, Transform(p))
	}

	return model.ScrapeResult{
		Success:     true,
		GroupsFound: len(candidates),
		Groups:      candidates,
		Errors:      []string{},
	}
}
