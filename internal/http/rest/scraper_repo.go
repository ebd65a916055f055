package rest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
)

func (api *API) createScraperRun(ctx context.Context, scraperType string) (model.ScraperRun, error) {
	run := model.ScraperRun{
		ID:          util.GenerateUUID(),
		ScraperType: scraperType,
		Status:      model.RunStatusRunning,
	}

	stmt := `
		INSERT INTO scraper_runs (id, scraper_type, status)
		VALUES ($1, $2, $3)
		RETURNING started_at
	`

	err := api.Deps.DB.Pool().QueryRow(ctx, stmt, run.ID, run.ScraperType, run.Status).Scan(&run.StartedAt)
	if err != nil {
		return model.ScraperRun{}, fmt.Errorf("creating scraper run: %w", err)
	}
	return run, nil
}

func (api *API) finishScraperRun(ctx context.Context, id uuid.UUID, status string, found, created int, errs []string, metadata map[string]any) error {
	if errs == nil {
		errs = []string{}
	}

	stmt := `
		UPDATE scraper_runs
		SET status = $2,
		    completed_at = NOW(),
		    groups_found = $3,
		    groups_created = $4,
		    errors = $5,
		    metadata = $6
		WHERE id = $1
	`

	_, err := api.Deps.DB.Pool().Exec(ctx, stmt, id, status, found, created, errs, metadata)
	if err != nil {
		return fmt.Errorf("finishing scraper run: %w", err)
	}
	return nil
}

func (api *API) ListScraperRuns(ctx context.Context) ([]model.ScraperRun, error) {
	stmt := `
		SELECT id, scraper_type, status, started_at, completed_at,
		       groups_found, groups_created, errors, metadata
		FROM scraper_runs
		ORDER BY started_at DESC
		LIMIT 50
	`

	rows, err := api.Deps.DB.Pool().Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("listing scraper runs: %w", err)
	}
	defer rows.Close()

	runs := []model.ScraperRun{}
	for rows.Next() {
		var run model.ScraperRun
		err := rows.Scan(
			&run.ID,
			&run.ScraperType,
			&run.Status,
			&run.StartedAt,
			&run.CompletedAt,
			&run.GroupsFound,
			&run.GroupsCreated,
			&run.Errors,
			&run.Metadata,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning scraper run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// UpsertScrapedGroup saves one adapter candidate keyed by externalId.
// A re-scrape refreshes content fields and scrapedAt only: status,
// reviewedBy and reviewedAt keep whatever moderation decided. Returns
// true when a new row was created.
func (api *API) UpsertScrapedGroup(ctx context.Context, c model.Candidate, sourceType model.SourceType, version string) (bool, error) {
	stmt := `
		INSERT INTO groups (
			id, sport, borough, name, venue, area, level, description,
			contact, source_url, external_id, source_type, status,
			submitted_at, scraped_at, scraper_version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        'NEEDS_REVIEW', NOW(), NOW(), $13)
		ON CONFLICT (external_id) DO UPDATE SET
			name = EXCLUDED.name,
			venue = EXCLUDED.venue,
			area = EXCLUDED.area,
			description = EXCLUDED.description,
			contact = EXCLUDED.contact,
			source_url = EXCLUDED.source_url,
			scraped_at = NOW(),
			scraper_version = EXCLUDED.scraper_version,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err := api.Deps.DB.Pool().QueryRow(ctx, stmt,
		util.GenerateUUID(),
		c.Sport,
		c.Borough,
		c.Name,
		c.Venue,
		c.Area,
		c.Level,
		c.Description,
		c.Contact,
		c.SourceURL,
		c.ExternalID,
		sourceType,
		version,
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("upserting scraped group: %w", err)
	}
	return inserted, nil
}

// insertAuditLog is the non-transactional variant used where the
// audited action itself is not a single database write.
func (api *API) insertAuditLog(ctx context.Context, entry model.AuditLog) error {
	stmt := `
		INSERT INTO audit_logs (id, action, entity, entity_id, user_id, changes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := api.Deps.DB.Pool().Exec(ctx, stmt,
		entry.ID,
		entry.Action,
		entry.Entity,
		entry.EntityID,
		entry.UserID,
		entry.Changes,
	)
	if err != nil {
		return fmt.Errorf("inserting audit log: %w", err)
	}
	return nil
}
