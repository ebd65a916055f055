package rest

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
	"github.com/ldnsports/ldnsports_api/util/values"
	"github.com/pkg/errors"
)

// ModerateGroupHelper applies an approve or reject decision. The
// status change and its audit record commit in one transaction; a
// listing already decided by another moderator yields a conflict.
func (api *API) ModerateGroupHelper(ctx context.Context, admin model.Admin, groupID uuid.UUID, target model.GroupStatus, reason string) (model.Group, string, string, error) {
	if !admin.Role.CanModerate() {
		return model.Group{}, values.NotAllowed, "viewer role may not moderate listings", errors.New("role cannot moderate")
	}

	group, err := api.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Group{}, values.NotFound, "group not found", err
		}
		return model.Group{}, values.Error, "failed to load group", err
	}

	if !group.Status.CanTransitionTo(target) {
		return model.Group{}, values.Conflict, "group has already been reviewed", errors.Errorf("cannot move %s to %s", group.Status, target)
	}

	action := "approve"
	if target == model.StatusRejected {
		action = "reject"
	}
	changes := map[string]any{
		"from": string(group.Status),
		"to":   string(target),
	}
	if reason != "" {
		changes["reason"] = reason
	}

	var updated model.Group
	txErr := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var err error
		updated, err = api.moderateGroupTx(ctx, tx, groupID, target, admin.Email)
		if err != nil {
			return err
		}

		return api.insertAuditLogTx(ctx, tx, model.AuditLog{
			ID:       util.GenerateUUID(),
			Action:   action,
			Entity:   "group",
			EntityID: groupID.String(),
			UserID:   admin.Email,
			Changes:  changes,
		})
	})
	if txErr != nil {
		if errors.Is(txErr, pgx.ErrNoRows) {
			// Another moderator got there first.
			return model.Group{}, values.Conflict, "group has already been reviewed", txErr
		}
		return model.Group{}, values.Error, "failed to update group", txErr
	}

	message := "Group approved"
	if target == model.StatusRejected {
		message = "Group rejected"
	}
	return updated, values.Success, message, nil
}

// CreateAdminHelper adds an email to the allowlist.
func (api *API) CreateAdminHelper(ctx context.Context, actor model.Admin, req model.CreateAdminRequest) (model.Admin, string, string, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := util.ValidateStruct(req); err != nil {
		return model.Admin{}, values.Unprocessable, "missing or invalid admin fields", err
	}

	if _, err := api.GetAdminByEmail(ctx, req.Email); err == nil {
		return model.Admin{}, values.Conflict, "admin already exists", errors.New("duplicate admin email")
	}

	admin := model.Admin{
		ID:    util.GenerateUUID(),
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	}

	txErr := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var err error
		admin, err = api.insertAdminTx(ctx, tx, admin)
		if err != nil {
			return err
		}

		return api.insertAuditLogTx(ctx, tx, model.AuditLog{
			ID:       util.GenerateUUID(),
			Action:   "create",
			Entity:   "admin",
			EntityID: admin.ID.String(),
			UserID:   actor.Email,
			Changes: map[string]any{
				"email": admin.Email,
				"role":  string(admin.Role),
			},
		})
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			// Concurrent create of the same email lost the race.
			return model.Admin{}, values.Conflict, "admin already exists", txErr
		}
		return model.Admin{}, values.Error, "failed to create admin", txErr
	}

	return admin, values.Created, "Admin created successfully", nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// DeleteAdminHelper removes an email from the allowlist. An admin may
// not remove themselves.
func (api *API) DeleteAdminHelper(ctx context.Context, actor model.Admin, adminID uuid.UUID) (string, string, error) {
	if actor.ID == adminID {
		return values.BadRequestBody, "cannot delete your own admin account", errors.New("self-deletion refused")
	}

	target, err := api.GetAdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return values.NotFound, "admin not found", err
		}
		return values.Error, "failed to load admin", err
	}

	txErr := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		if err := api.deleteAdminTx(ctx, tx, adminID); err != nil {
			return err
		}

		return api.insertAuditLogTx(ctx, tx, model.AuditLog{
			ID:       util.GenerateUUID(),
			Action:   "delete",
			Entity:   "admin",
			EntityID: adminID.String(),
			UserID:   actor.Email,
			Changes: map[string]any{
				"email": target.Email,
				"role":  string(target.Role),
			},
		})
	})
	if txErr != nil {
		return values.Error, "failed to delete admin", txErr
	}

	return values.Success, "Admin deleted successfully", nil
}

// SeedAdmins upserts the boot allowlist as SUPER_ADMIN rows. The local
// part of each email doubles as the display name.
func (api *API) SeedAdmins(ctx context.Context, emails string) error {
	for _, email := range strings.Split(emails, ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		if err := util.ValidEmail(email); err != nil {
			return errors.Wrapf(err, "invalid seed admin email %q", email)
		}

		name := email
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}

		if err := api.UpsertSuperAdmin(ctx, model.Admin{
			ID:    util.GenerateUUID(),
			Email: email,
			Name:  name,
			Role:  model.RoleSuperAdmin,
		}); err != nil {
			return err
		}
	}
	return nil
}
