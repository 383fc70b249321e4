package models

import (
	"time"

	"gorm.io/gorm"
)

// VisitorLog is one visitor's scheduled or ad-hoc entry. Status and the
// timestamps are mutated only through the workflow transitions; committee
// and admin may overwrite fields directly as an administrative override.
type VisitorLog struct {
	gorm.Model
	VisitorName   string     `json:"visitor_name"`
	Purpose       string     `json:"purpose"`
	ContactNumber string     `json:"contact_number,omitempty"`
	FlatToVisit   string     `json:"flat_to_visit" gorm:"index"`
	ExpectedTime  time.Time  `json:"expected_time"`
	CheckInTime   *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`

	// "scheduled", "checked_in", "checked_out", "cancelled",
	// "pending_approval", "rejected"
	Status     string `json:"status" gorm:"default:scheduled"`
	IsApproved bool   `json:"is_approved" gorm:"default:false"`

	LoggedBy    uint  `json:"logged_by"`
	ScheduledBy uint  `json:"scheduled_by" gorm:"index"`
	ApprovedBy  *uint `json:"approved_by,omitempty"`

	// NeedsApprovalFrom is the resident whose decision a pending_approval
	// record awaits. Nil for self-scheduled visitors.
	NeedsApprovalFrom *uint `json:"needs_approval_from,omitempty"`

	Logger    User  `json:"logger,omitempty" gorm:"foreignKey:LoggedBy"`
	Scheduler User  `json:"scheduler,omitempty" gorm:"foreignKey:ScheduledBy"`
	Approver  *User `json:"approver,omitempty" gorm:"foreignKey:ApprovedBy"`
}
