package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Notice struct {
	gorm.Model
	Title   string `json:"title"`
	Content string `json:"content"`

	// Audience holds role groups: "owners", "tenants", "committee", "all".
	Audience pq.StringArray `json:"audience" gorm:"type:text[]"`

	CreatedBy   uint               `json:"created_by"`
	Creator     User               `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Attachments []NoticeAttachment `json:"attachments,omitempty"`
	ExpiresAt   *time.Time         `json:"expires_at,omitempty"`
	IsPinned    bool               `json:"is_pinned" gorm:"default:false"`
}

type NoticeAttachment struct {
	gorm.Model
	NoticeID uint   `json:"notice_id" gorm:"index"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
