package domain

import "errors"

// Role is the enumerated set of user roles.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTeamMember Role = "team member"
)

var ErrInvalidRole = errors.New("invalid role")
var ErrEmailExists = errors.New("email already exists")
var ErrUserNotFound = errors.New("user not found")

// Valid reports whether the role belongs to the enumerated set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTeamMember:
		return true
	}
	return false
}

// User models a person tasks can be assigned to. The id is assigned by the
// store on insert and never changes; email is unique across all users.
type User struct {
	ID    int     `json:"id"    gorm:"primaryKey"`
	Name  string  `json:"name"  gorm:"not null"`
	Role  Role    `json:"role"  gorm:"not null"`
	Email string  `json:"email" gorm:"uniqueIndex;not null"`
	Phone *string `json:"phone"`
}
