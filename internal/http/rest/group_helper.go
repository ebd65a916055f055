package rest

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
	"github.com/ldnsports/ldnsports_api/util/values"
	"github.com/pkg/errors"
)

// SubmitGroupHelper validates a public submission and stores it as a
// PENDING listing awaiting moderation.
func (api *API) SubmitGroupHelper(ctx context.Context, req model.SubmitGroupRequest) (model.Group, string, string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Contact = strings.TrimSpace(req.Contact)

	if err := util.ValidateStruct(req); err != nil {
		return model.Group{}, values.Unprocessable, "missing or invalid submission fields", err
	}
	if req.SourceURL != "" && !util.IsURL(req.SourceURL) {
		return model.Group{}, values.Unprocessable, "source_url is not a valid URL", errors.New("invalid source url")
	}

	group := model.Group{
		ID:          util.GenerateUUID(),
		Sport:       req.Sport,
		Borough:     req.Borough,
		Name:        req.Name,
		Venue:       req.Venue,
		Area:        req.Area,
		Level:       req.Level,
		Description: req.Description,
		Contact:     req.Contact,
		SourceType:  model.SourceUserSubmission,
		Status:      model.StatusPending,
	}
	if req.SourceURL != "" {
		group.SourceURL = &req.SourceURL
	}

	created, err := api.InsertGroup(ctx, group)
	if err != nil {
		return model.Group{}, values.Error, "failed to store submission", err
	}
	created.Slug = util.GenerateSlug(created.Sport, created.Borough)

	return created, values.Created, "Submission received and awaiting review", nil
}

// ListApprovedGroupsHelper returns the public directory, optionally
// narrowed by sport and borough.
func (api *API) ListApprovedGroupsHelper(ctx context.Context, sport, borough string) ([]model.Group, string, string, error) {
	groups, err := api.ListApprovedGroups(ctx, sport, borough)
	if err != nil {
		return nil, values.Error, "failed to list groups", err
	}
	for i := range groups {
		groups[i].Slug = util.GenerateSlug(groups[i].Sport, groups[i].Borough)
	}

	return groups, values.Success, "Groups retrieved successfully", nil
}

// GetApprovedGroupHelper returns one approved listing. Listings in any
// other status are invisible to the public surface.
func (api *API) GetApprovedGroupHelper(ctx context.Context, id uuid.UUID) (model.Group, string, string, error) {
	group, err := api.GetApprovedGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Group{}, values.NotFound, "group not found", err
		}
		return model.Group{}, values.Error, "failed to get group", err
	}
	group.Slug = util.GenerateSlug(group.Sport, group.Borough)

	return group, values.Success, "Group retrieved successfully", nil
}
