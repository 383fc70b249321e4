package models

import (
	"time"

	"gorm.io/gorm"
)

type Poll struct {
	gorm.Model
	Question  string         `json:"question"`
	Options   []PollOption   `json:"options"`
	CreatedBy uint           `json:"created_by"`
	Creator   User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	ClosesAt  *time.Time     `json:"closes_at,omitempty"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	Responses []PollResponse `json:"responses,omitempty"`
}

type PollOption struct {
	gorm.Model
	PollID uint   `json:"poll_id" gorm:"index"`
	Label  string `json:"label"`
	Votes  int    `json:"votes" gorm:"default:0"`
}

type PollResponse struct {
	gorm.Model
	PollID   uint      `json:"poll_id" gorm:"index"`
	UserID   uint      `json:"user_id" gorm:"index"`
	OptionID uint      `json:"option_id"`
	VotedAt  time.Time `json:"voted_at"`
}

// HasVoted reports whether userID already has a response on the poll.
func (p *Poll) HasVoted(userID uint) bool {
	for _, r := range p.Responses {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// OptionByID returns the poll option with the given id, or nil.
func (p *Poll) OptionByID(optionID uint) *PollOption {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return &p.Options[i]
		}
	}
	return nil
}

// IsClosed reports whether voting is over: explicitly deactivated or
// past the closing time.
func (p *Poll) IsClosed(now time.Time) bool {
	if !p.IsActive {
		return true
	}
	return p.ClosesAt != nil && p.ClosesAt.Before(now)
}
