package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser             Role = "user"
	RoleEquipmentManager Role = "equipment_manager"
	RoleAdmin            Role = "admin"
)

var roleRank = map[Role]int{
	RoleUser:             0,
	RoleEquipmentManager: 1,
	RoleAdmin:            2,
}

// ParseRole normalizes a stored role string: case-insensitive, whitespace
// treated as an underscore separator. Anything outside the known set is the
// ordinary customer tier.
func ParseRole(s string) Role {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.Join(strings.Fields(norm), "_")
	switch Role(norm) {
	case RoleEquipmentManager, RoleAdmin:
		return Role(norm)
	default:
		return RoleUser
	}
}

// AtLeast reports whether r sits at or above other in the role ordering
// (admin > equipment_manager > user).
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" validate:"required"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role" gorm:"size:32;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
