package models

import "airtracker/src/types"

// User rows are provisioned by the external identity service; the API only
// needs the email address, display name and role for ownership and
// permission checks.
type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Email string `gorm:"uniqueIndex" json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `gorm:"default:'user'" json:"role,omitempty"`

	Orders []Order `json:"orders,omitempty"`

	types.Timestamps
}

func (u *User) IsAdmin() bool {
	return types.Role(u.Role) == types.ROLE_ADMIN
}
