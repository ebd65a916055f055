// Package meetup pulls candidate sports groups from the Meetup GraphQL
// API for moderation.
package meetup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ldnsports/ldnsports_api/internal/classify"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
	"golang.org/x/oauth2"
)

const defaultGraphQLURL = "https://api.meetup.com/gql"

// Central London anchor for every keyword search.
const (
	searchLat    = 51.5074
	searchLon    = -0.1278
	searchRadius = 25 // miles
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

// Client handles communication with the Meetup GraphQL API.
type Client struct {
	AccessToken string
	BaseURL     string
	Client      *http.Client
	Delay       time.Duration
}

// NewClient creates a client authenticated with the given OAuth access
// token. The token should be loaded from the environment.
func NewClient(accessToken string) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if accessToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		httpClient = oauth2.NewClient(context.Background(), src)
		httpClient.Timeout = 30 * time.Second
	}

	return &Client{
		AccessToken: accessToken,
		BaseURL:     defaultGraphQLURL,
		Client:      httpClient,
		Delay:       500 * time.Millisecond,
	}
}

// Group is a raw Meetup search result before normalization.
type Group struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URLName     string  `json:"urlname"`
	Link        string  `json:"link"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	MemberCount int     `json:"member_count"`
	Category    string  `json:"category,omitempty"`
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type searchResponse struct {
	Data struct {
		KeywordSearch struct {
			Edges []struct {
				Node struct {
					ID          string  `json:"id"`
					Name        string  `json:"name"`
					Description string  `json:"description"`
					URLName     string  `json:"urlname"`
					Link        string  `json:"link"`
					City        string  `json:"city"`
					Country     string  `json:"country"`
					Lat         float64 `json:"lat"`
					Lon         float64 `json:"lon"`
					Memberships struct {
						Count int `json:"count"`
					} `json:"memberships"`
					TopicCategory struct {
						Name string `json:"name"`
					} `json:"groupByTopic"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"keywordSearch"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

const searchQuery = `
  query SearchGroups($query: String!, $lat: Float!, $lon: Float!, $radius: Int!) {
    keywordSearch(
      filter: {
        query: $query
        lat: $lat
        lon: $lon
        radius: $radius
        source: GROUPS
      }
      input: { first: 50 }
    ) {
      edges {
        node {
          ... on Group {
            id
            name
            description
            urlname
            link
            city
            country
            lat
            lon
            memberships {
              count
            }
            groupByTopic: topicCategory {
              name
            }
          }
        }
      }
    }
  }
`

// Scrape runs one full keyword sweep. A missing access token
// short-circuits before any network call.
func (c *Client) Scrape(ctx context.Context) model.ScrapeResult {
	if c.AccessToken == "" {
		return model.ScrapeResult{
			Success: false,
			Groups:  []model.Candidate{},
			Errors: []string{
				"MEETUP_ACCESS_TOKEN environment variable is not set.",
				"To get an access token:",
				"1. Create an OAuth app at https://www.meetup.com/api/oauth/list/",
				"2. Complete the OAuth2 flow to get an access token",
				"3. Set MEETUP_ACCESS_TOKEN in your environment variables",
			},
		}
	}

	groups, err := c.search(ctx)
	if err != nil {
		return model.ScrapeResult{
			Success: false,
			Groups:  []model.Candidate{},
			Errors:  []string{fmt.Sprintf("Scraper error: %v", err)},
		}
	}

	candidates := make([]model.Candidate, 0, len(groups))
	for _, g := range groups {
		candidates = append(candidates, Transform(g))
	}

	return model.ScrapeResult{
		Success:     true,
		GroupsFound: len(candidates),
		Groups:      candidates,
		Errors:      []string{},
	}
}

func (c *Client) search(ctx context.Context) ([]Group, error) {
	var groups []Group
	seen := make(map[string]bool)

	for _, keyword := range sportsKeywords {
		body, err := json.Marshal(graphQLRequest{
			Query: searchQuery,
			Variables: map[string]any{
				"query":  keyword + " London",
				"lat":    searchLat,
				"lon":    searchLon,
				"radius": searchRadius,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("marshalling search query: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("creating search request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing search request: %w", err)
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading search response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			log.Printf("Meetup API error for keyword %q: %d", keyword, resp.StatusCode)
			continue
		}

		var parsed searchResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			log.Printf("Meetup API: decoding response for %q: %v", keyword, err)
			continue
		}
		if len(parsed.Errors) > 0 {
			log.Printf("Meetup API: GraphQL errors for %q: %v", keyword, parsed.Errors)
			continue
		}

		for _, edge := range parsed.Data.KeywordSearch.Edges {
			node := edge.Node
			if node.ID == "" || seen[node.ID] {
				continue
			}
			// Only include UK groups
			if node.Country != "GB" && node.Country != "United Kingdom" {
				continue
			}

			seen[node.ID] = true
			link := node.Link
			if link == "" {
				link = fmt.Sprintf("https://www.meetup.com/%s/", node.URLName)
			}
			city := node.City
			if city == "" {
				city = "London"
			}
			groups = append(groups, Group{
				ID:          node.ID,
				Name:        node.Name,
				Description: node.Description,
				URLName:     node.URLName,
				Link:        link,
				City:        city,
				Country:     node.Country,
				Lat:         node.Lat,
				Lon:         node.Lon,
				MemberCount: node.Memberships.Count,
				Category:    node.TopicCategory.Name,
			})
		}

		select {
		case <-ctx.Done():
			return groups, ctx.Err()
		case <-time.After(c.Delay):
		}
	}

	return groups, nil
}

// Transform normalizes a raw Meetup group into a candidate listing.
func Transform(g Group) model.Candidate {
	sport := classify.DetectSport(g.Name, g.Description)
	borough := classify.DetectBorough(g.City, g.Lat, g.Lon)

	venue := g.City
	if venue == "" {
		venue = "Various locations in London"
	}

	description := util.CleanDescription(g.Description, 500)
	if description == "" {
		description = fmt.Sprintf("Join %s - a %s group in %s with %d members.",
			g.Name, strings.ToLower(sport), borough, g.MemberCount)
	}

	return model.Candidate{
		Sport:       sport,
		Borough:     borough,
		Name:        g.Name,
		Venue:       venue,
		Area:        borough,
		Level:       "Mixed",
		Description: description,
		Contact:     "Join via Meetup: " + g.Link,
		SourceURL:   g.Link,
		ExternalID:  "meetup_" + g.ID,
	}
}

// ScrapeSamples returns the fixed sample list in place of a live sweep,
// for demos and tests without provider credentials.
func (c *Client) ScrapeSamples() model.ScrapeResult {
	samples := Samples()
	candidates := make([]model.Candidate, 0, len(samples))
	for _, g := range samples {
		candidates = append(candidates, Transform(g))
	}

	return model.ScrapeResult{
		Success:     true,
		GroupsFound: len(candidates),
		Groups:      candidates,
		Errors:      []string{},
	}
}
