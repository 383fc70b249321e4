package models

import (
	"time"

	"gorm.io/gorm"
)

type MaintenanceBill struct {
	gorm.Model
	FlatNumber  string    `json:"flat_number" gorm:"index;uniqueIndex:idx_flat_period"`
	OwnerID     uint      `json:"owner_id"`
	Owner       User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	PeriodStart time.Time `json:"period_start" gorm:"uniqueIndex:idx_flat_period"`
	PeriodEnd   time.Time `json:"period_end"`
	Amount      float64   `json:"amount"`

	// Breakdown of the billed amount.
	MaintenanceCharge float64 `json:"maintenance_charge" gorm:"default:0"`
	ParkingCharge     float64 `json:"parking_charge" gorm:"default:0"`
	SinkingFund       float64 `json:"sinking_fund" gorm:"default:0"`
	OtherCharge       float64 `json:"other_charge" gorm:"default:0"`

	DueDate time.Time  `json:"due_date"`
	Status  string     `json:"status" gorm:"default:pending"` // "pending", "paid", "overdue"
	PaidAt  *time.Time `json:"paid_at,omitempty"`
	Notes   string     `json:"notes,omitempty"`
}
