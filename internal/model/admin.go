package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole gates which admin actions an operator may perform. Only
// SUPER_ADMIN may manage other admins; VIEWER may not mutate listings.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "SUPER_ADMIN"
	RoleModerator  AdminRole = "MODERATOR"
	RoleViewer     AdminRole = "VIEWER"
)

// CanModerate reports whether the role may approve or reject listings.
func (r AdminRole) CanModerate() bool {
	return r == RoleSuperAdmin || r == RoleModerator
}

type Admin struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      AdminRole `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAdminRequest struct {
	Email string    `json:"email" validate:"required,email"`
	Name  string    `json:"name" validate:"required"`
	Role  AdminRole `json:"role" validate:"required,oneof=SUPER_ADMIN MODERATOR VIEWER"`
}
