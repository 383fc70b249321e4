package models

import (
	"time"

	"gorm.io/gorm"
)

const ComplaintStatusResolved = "resolved"

type Complaint struct {
	gorm.Model
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category" gorm:"default:other"` // "maintenance", "security", "billing", "other"

	CreatedBy  uint  `json:"created_by" gorm:"index"`
	Creator    User  `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	AssignedTo *uint `json:"assigned_to,omitempty"`
	Assignee   *User `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`

	// "open", "in_progress", "resolved", "closed", "rejected"
	Status          string     `json:"status" gorm:"default:open"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Priority        string     `json:"priority" gorm:"default:medium"` // "low", "medium", "high"
	IsPinned        bool       `json:"is_pinned" gorm:"default:false"`
}
