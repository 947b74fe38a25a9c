package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role represents the type of role an operator can have in the system.
type Role string

const (
	// RoleUser may manage customers, activities and recommendations.
	RoleUser Role = "user"
	// RoleAdmin may additionally manage operators and the catalog.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Grants expands a role into the role claims carried by its tokens.
// Admins also hold the user role so that user routes accept them.
func (r Role) Grants() Roles {
	if r == RoleAdmin {
		return Roles{RoleAdmin, RoleUser}
	}

	return Roles{r}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Operator is a staff account that calls the API on behalf of customers.
type Operator struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
