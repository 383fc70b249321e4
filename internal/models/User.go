package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" gorm:"unique"`
	Password  string `json:"-"`
	Phone     string `json:"phone"`
	Role      string `json:"role"` // "owner", "tenant", "committee", "security", "admin"

	// FlatNumber is the locality key for residents; security users carry
	// their gate in GateNumber and mirror it into FlatNumber.
	FlatNumber string `json:"flat_number"`
	GateNumber string `json:"gate_number,omitempty"`

	IsActive    bool       `json:"is_active" gorm:"default:true"`
	IsApproved  bool       `json:"is_approved" gorm:"default:false"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// LocationKey returns the operative location for the user: gate for
// security, flat for everyone else.
func (u *User) LocationKey() string {
	if u.Role == "security" && u.GateNumber != "" {
		return u.GateNumber
	}
	return u.FlatNumber
}
