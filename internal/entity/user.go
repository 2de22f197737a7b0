package entity

import (
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleViewer UserRole = "viewer"
)

// TeamUser is a dashboard-managed team member row. These records carry no
// credentials: dashboard access goes through the shared gate password.
type TeamUser struct {
	Id        int       `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	TeamUserInsert
}

type TeamUserInsert struct {
	Name   string   `db:"name" json:"name"`
	Email  string   `db:"email" json:"email"`
	Role   UserRole `db:"role" json:"role"`
	Active bool     `db:"active" json:"active"`
}

// TeamUserPatch carries a partial update; nil fields are left untouched.
type TeamUserPatch struct {
	Name   *string   `json:"name,omitempty"`
	Email  *string   `json:"email,omitempty"`
	Role   *UserRole `json:"role,omitempty"`
	Active *bool     `json:"active,omitempty"`
}

func (p *TeamUserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil && p.Active == nil
}

func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

func ValidateTeamUserInsert(u *TeamUserInsert) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))

	if u.Name == "" {
		return &ValidationError{Message: "name is required"}
	}
	if u.Email == "" {
		return &ValidationError{Message: "email is required"}
	}
	if !govalidator.IsEmail(u.Email) {
		return &ValidationError{Message: "invalid email format"}
	}
	if u.Role == "" {
		u.Role = RoleEditor
	}
	if !ValidUserRole(u.Role) {
		return &ValidationError{Message: "role must be one of admin, editor, viewer"}
	}
	return nil
}

func ValidateTeamUserPatch(p *TeamUserPatch) error {
	if p.Empty() {
		return &ValidationError{Message: "nothing to update"}
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return &ValidationError{Message: "name must not be empty"}
		}
		p.Name = &name
	}
	if p.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*p.Email))
		if !govalidator.IsEmail(email) {
			return &ValidationError{Message: "invalid email format"}
		}
		p.Email = &email
	}
	if p.Role != nil && !ValidUserRole(*p.Role) {
		return &ValidationError{Message: "role must be one of admin, editor, viewer"}
	}
	return nil
}
