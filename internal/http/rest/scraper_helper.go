package rest

import (
	"context"
	"fmt"

	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
	"github.com/ldnsports/ldnsports_api/util/values"
	"github.com/pkg/errors"
)

// RunScraperHelper drives one adapter sweep end to end: record a
// running ScraperRun, collect candidates, upsert them by externalId,
// close the run, and append the audit entry. The run row is created
// before the sweep starts so long live sweeps are observable in the
// running state and a mid-sweep crash still leaves a record.
func (api *API) RunScraperHelper(ctx context.Context, admin model.Admin, provider string, seed bool) (model.ScrapeResult, string, string, error) {
	if !admin.Role.CanModerate() {
		return model.ScrapeResult{}, values.NotAllowed, "viewer role may not trigger scrapers", errors.New("role cannot trigger scrapers")
	}

	sourceType, err := scraperSourceType(provider)
	if err != nil {
		return model.ScrapeResult{}, values.NotFound, "unknown scraper provider", err
	}

	scraperType := string(sourceType)
	if seed {
		scraperType += " (Seed)"
	}

	run, err := api.createScraperRun(ctx, scraperType)
	if err != nil {
		return model.ScrapeResult{}, values.Error, "failed to record scraper run", err
	}

	result := api.runAdapter(ctx, provider, seed)

	metadata := map[string]any{
		"provider": provider,
		"seed":     seed,
	}

	if !result.Success {
		if finishErr := api.finishScraperRun(ctx, run.ID, model.RunStatusFailed, result.GroupsFound, 0, result.Errors, metadata); finishErr != nil {
			return model.ScrapeResult{}, values.Error, "failed to record scraper run", finishErr
		}
		if auditErr := api.insertAuditLog(ctx, model.AuditLog{
			ID:       util.GenerateUUID(),
			Action:   "scrape",
			Entity:   "scraper_run",
			EntityID: run.ID.String(),
			UserID:   admin.Email,
			Changes: map[string]any{
				"scraper_type": scraperType,
				"status":       model.RunStatusFailed,
				"errors":       len(result.Errors),
			},
		}); auditErr != nil {
			return model.ScrapeResult{}, values.Error, "failed to record audit entry", auditErr
		}
		return result, values.Failed, "Scraper did not run", nil
	}

	created := 0
	for _, candidate := range result.Groups {
		inserted, upsertErr := api.UpsertScrapedGroup(ctx, candidate, sourceType, api.Config.ScraperVersion)
		if upsertErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to save %s: %v", candidate.Name, upsertErr))
			continue
		}
		if inserted {
			created++
		}
	}
	result.GroupsCreated = created

	runStatus := model.RunStatusCompleted
	if len(result.Errors) > 0 && created == 0 && len(result.Groups) > 0 {
		runStatus = model.RunStatusFailed
	}
	if finishErr := api.finishScraperRun(ctx, run.ID, runStatus, result.GroupsFound, created, result.Errors, metadata); finishErr != nil {
		return model.ScrapeResult{}, values.Error, "failed to record scraper run", finishErr
	}

	if auditErr := api.insertAuditLog(ctx, model.AuditLog{
		ID:       util.GenerateUUID(),
		Action:   "scrape",
		Entity:   "scraper_run",
		EntityID: run.ID.String(),
		UserID:   admin.Email,
		Changes: map[string]any{
			"scraper_type":   scraperType,
			"status":         runStatus,
			"groups_found":   result.GroupsFound,
			"groups_created": created,
		},
	}); auditErr != nil {
		return model.ScrapeResult{}, values.Error, "failed to record audit entry", auditErr
	}

	return result, values.Success, "Scraper run completed", nil
}

// scraperSourceType resolves a URL provider segment to its source
// type. Unknown providers fail here, before any run row is written.
func scraperSourceType(provider string) (model.SourceType, error) {
	switch provider {
	case "meetup":
		return model.SourceMeetupScraper, nil
	case "facebook":
		return model.SourceFacebookScraper, nil
	case "google":
		return model.SourceGoogleScraper, nil
	case "bing":
		return model.SourceBingScraper, nil
	case "brave":
		return model.SourceBraveScraper, nil
	default:
		return "", errors.Errorf("unknown provider %q", provider)
	}
}

// runAdapter dispatches to the provider's client. Seed mode uses the
// fixed sample set and never talks to the network.
func (api *API) runAdapter(ctx context.Context, provider string, seed bool) model.ScrapeResult {
	switch provider {
	case "meetup":
		if seed {
			return api.Deps.Meetup.ScrapeSamples()
		}
		return api.Deps.Meetup.Scrape(ctx)
	case "facebook":
		if seed {
			return api.Deps.Facebook.ScrapeSamples()
		}
		return api.Deps.Facebook.Scrape(ctx)
	case "google":
		if seed {
			return api.Deps.Google.ScrapeSamples()
		}
		return api.Deps.Google.Scrape(ctx)
	case "bing":
		if seed {
			return api.Deps.Bing.ScrapeSamples()
		}
		return api.Deps.Bing.Scrape(ctx)
	case "brave":
		if seed {
			return api.Deps.Brave.ScrapeSamples()
		}
		return api.Deps.Brave.Scrape(ctx)
	default:
		return model.ScrapeResult{
			Success: false,
			Groups:  []model.Candidate{},
			Errors:  []string{fmt.Sprintf("unknown provider %q", provider)},
		}
	}
}
