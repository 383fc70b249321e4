package models

import "gorm.io/gorm"

type Payment struct {
	gorm.Model
	BillID  uint            `json:"bill_id"`
	Bill    MaintenanceBill `json:"bill,omitempty" gorm:"foreignKey:BillID"`
	PayerID uint            `json:"payer_id"`
	Payer   User            `json:"payer,omitempty" gorm:"foreignKey:PayerID"`
	Amount  float64         `json:"amount"`

	// "initiated", "successful", "failed", "refunded"
	Status        string `json:"status" gorm:"default:initiated"`
	TransactionID string `json:"transaction_id" gorm:"unique"`
	PaymentMethod string `json:"payment_method" gorm:"default:razorpay"` // "razorpay", "stripe", "cash", "other"
	Metadata      string `json:"metadata,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
}
