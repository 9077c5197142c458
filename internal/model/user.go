package model

import "time"

// Roles a user account can hold.
const (
	RoleCustomer  = "customer"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// User represents a registered account in the dealership catalog.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"` // stored lowercase
	Phone        string    `json:"phone" gorm:"size:50"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;not null;default:'customer'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Leads []Lead `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// HasRole reports whether the user's role is one of the given roles.
func (u *User) HasRole(roles ...string) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}
