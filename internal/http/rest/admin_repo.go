package rest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ldnsports/ldnsports_api/internal/model"
)

func (api *API) GetAdminByEmail(ctx context.Context, email string) (model.Admin, error) {
	var admin model.Admin
	stmt := `
		SELECT id, email, name, role, created_at
		FROM admins
		WHERE LOWER(email) = LOWER($1)
	`

	err := api.Deps.DB.Pool().QueryRow(ctx, stmt, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.Role,
		&admin.CreatedAt,
	)
	if err != nil {
		return model.Admin{}, err
	}
	return admin, nil
}

func (api *API) GetAdminByID(ctx context.Context, id uuid.UUID) (model.Admin, error) {
	var admin model.Admin
	stmt := `
		SELECT id, email, name, role, created_at
		FROM admins
		WHERE id = $1
	`

	err := api.Deps.DB.Pool().QueryRow(ctx, stmt, id).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.Role,
		&admin.CreatedAt,
	)
	if err != nil {
		return model.Admin{}, err
	}
	return admin, nil
}

func (api *API) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	stmt := `
		SELECT id, email, name, role, created_at
		FROM admins
		ORDER BY created_at
	`

	rows, err := api.Deps.DB.Pool().Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("listing admins: %w", err)
	}
	defer rows.Close()

	admins := []model.Admin{}
	for rows.Next() {
		var admin model.Admin
		if err := rows.Scan(&admin.ID, &admin.Email, &admin.Name, &admin.Role, &admin.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning admin: %w", err)
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

func (api *API) insertAdminTx(ctx context.Context, tx pgx.Tx, admin model.Admin) (model.Admin, error) {
	stmt := `
		INSERT INTO admins (id, email, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, name, role, created_at
	`

	err := tx.QueryRow(ctx, stmt, admin.ID, admin.Email, admin.Name, admin.Role).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.Role,
		&admin.CreatedAt,
	)
	if err != nil {
		return model.Admin{}, fmt.Errorf("inserting admin: %w", err)
	}
	return admin, nil
}

func (api *API) deleteAdminTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	result, err := tx.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting admin: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpsertSuperAdmin seeds a boot allowlist entry. An existing row keeps
// its id and name but is promoted to SUPER_ADMIN.
func (api *API) UpsertSuperAdmin(ctx context.Context, admin model.Admin) error {
	stmt := `
		INSERT INTO admins (id, email, name, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
	`

	_, err := api.Deps.DB.Pool().Exec(ctx, stmt, admin.ID, admin.Email, admin.Name, admin.Role)
	if err != nil {
		return fmt.Errorf("seeding admin %s: %w", admin.Email, err)
	}
	return nil
}

// ListSubmissions returns listings still awaiting a moderation
// decision, oldest first.
func (api *API) ListSubmissions(ctx context.Context) ([]model.Group, error) {
	stmt := `
		SELECT ` + groupColumns + `
		FROM groups
		WHERE status IN ('PENDING', 'NEEDS_REVIEW')
		ORDER BY submitted_at
	`

	rows, err := api.Deps.DB.Pool().Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	groups := []model.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// moderateGroupTx flips a pending listing to its terminal status. The
// status guard in the WHERE clause makes concurrent decisions lose
// with pgx.ErrNoRows instead of silently double-reviewing.
func (api *API) moderateGroupTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, target model.GroupStatus, reviewer string) (model.Group, error) {
	stmt := `
		UPDATE groups
		SET status = $2,
		    reviewed_by = $3,
		    reviewed_at = NOW(),
		    updated_at = NOW()
		WHERE id = $1 AND status IN ('PENDING', 'NEEDS_REVIEW')
		RETURNING ` + groupColumns

	row := tx.QueryRow(ctx, stmt, id, target, reviewer)
	return scanGroup(row)
}

func (api *API) insertAuditLogTx(ctx context.Context, tx pgx.Tx, entry model.AuditLog) error {
	stmt := `
		INSERT INTO audit_logs (id, action, entity, entity_id, user_id, changes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := tx.Exec(ctx, stmt,
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
