package domain

import "strings"

// Role classifies the user composing an order. Commercial agents order on
// behalf of a client they must pick; institutional users order for themselves.
type Role string

const (
	RoleCommercial    Role = "COMMERCIAL"
	RoleInstitutional Role = "INSTITUTIONAL"
	RoleOther         Role = "OTHER"
)

// ParseRole maps a free-form role string onto the closed enum.
// Matching is case-insensitive; anything unrecognized becomes RoleOther.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "commercial":
		return RoleCommercial
	case "institutional":
		return RoleInstitutional
	default:
		return RoleOther
	}
}

// IsValid checks if the role is one of the known values
func (r Role) IsValid() bool {
	switch r {
	case RoleCommercial, RoleInstitutional, RoleOther:
		return true
	default:
		return false
	}
}

// RequiresClient reports whether this role must pick a client before submitting.
func (r Role) RequiresClient() bool {
	return r == RoleCommercial
}
