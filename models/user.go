package models

import (
	"time"
)

// UserRole is the closed set of roles known to the system. Role checks must
// go through the constants below so an unhandled role cannot fall through a
// string comparison.
type UserRole string

const (
	RoleMACOfficer    UserRole = "mac_officer"
	RoleMICATReviewer UserRole = "micat_reviewer"
	RoleAdmin         UserRole = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleMACOfficer, RoleMICATReviewer, RoleAdmin:
		return true
	}
	return false
}

// Label returns the display name used in role-switch messages.
func (r UserRole) Label() string {
	switch r {
	case RoleMACOfficer:
		return "MAC PR Officer"
	case RoleMICATReviewer:
		return "MICAT Reviewer"
	case RoleAdmin:
		return "System Admin"
	}
	return string(r)
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	MACID        *string   `json:"mac_id,omitempty"`
	MACName      *string   `json:"mac_name,omitempty"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// MAC is a Ministry/Agency/Commission, the organizational unit a content
// submitter belongs to. Reference data, read-only at runtime.
type MAC struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Acronym  string `json:"acronym"`
	Category string `json:"category"`
}
