package rest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ldnsports/ldnsports_api/internal/model"
)

const groupColumns = `
	id, sport, borough, name, venue, area, level, description, contact,
	source_url, external_id, source_type, status, reviewed_by, reviewed_at,
	submitted_at, scraped_at, scraper_version, created_at, updated_at
`

func scanGroup(row interface{ Scan(dest ...any) error }) (model.Group, error) {
	var g model.Group
	err := row.Scan(
		&g.ID,
		&g.Sport,
		&g.Borough,
		&g.Name,
		&g.Venue,
		&g.Area,
		&g.Level,
		&g.Description,
		&g.Contact,
		&g.SourceURL,
		&g.ExternalID,
		&g.SourceType,
		&g.Status,
		&g.ReviewedBy,
		&g.ReviewedAt,
		&g.SubmittedAt,
		&g.ScrapedAt,
		&g.ScraperVersion,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	return g, err
}

func (api *API) InsertGroup(ctx context.Context, group model.Group) (model.Group, error) {
	stmt := `
		INSERT INTO groups (
			id, sport, borough, name, venue, area, level, description,
			contact, source_url, source_type, status, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING ` + groupColumns

	row := api.Deps.DB.Pool().QueryRow(ctx, stmt,
		group.ID,
		group.Sport,
		group.Borough,
		group.Name,
		group.Venue,
		group.Area,
		group.Level,
		group.Description,
		group.Contact,
		group.SourceURL,
		group.SourceType,
		group.Status,
	)

	created, err := scanGroup(row)
	if err != nil {
		return model.Group{}, fmt.Errorf("inserting group: %w", err)
	}
	return created, nil
}

// ListApprovedGroups returns approved listings, optionally filtered by
// sport and borough. Filters are exact, case-insensitive matches.
func (api *API) ListApprovedGroups(ctx context.Context, sport, borough string) ([]model.Group, error) {
	stmt := `
		SELECT ` + groupColumns + `
		FROM groups
		WHERE status = 'APPROVED'
		  AND ($1 = '' OR LOWER(sport) = LOWER($1))
		  AND ($2 = '' OR LOWER(borough) = LOWER($2))
		ORDER BY borough, name
	`

	rows, err := api.Deps.DB.Pool().Query(ctx, stmt, sport, borough)
	if err != nil {
		return nil, fmt.Errorf("listing approved groups: %w", err)
	}
	defer rows.Close()

	groups := []model.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (api *API) GetApprovedGroupByID(ctx context.Context, id uuid.UUID) (model.Group, error) {
	stmt := `
		SELECT ` + groupColumns + `
		FROM groups
		WHERE id = $1 AND status = 'APPROVED'
	`

	row := api.Deps.DB.Pool().QueryRow(ctx, stmt, id)
	return scanGroup(row)
}

func (api *API) GetGroupByID(ctx context.Context, id uuid.UUID) (model.Group, error) {
	stmt := `
		SELECT ` + groupColumns + `
		FROM groups
		WHERE id = $1
	`

	row := api.Deps.DB.Pool().QueryRow(ctx, stmt, id)
	return scanGroup(row)
}
