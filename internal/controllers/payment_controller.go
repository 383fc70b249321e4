package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"society_connect/internal/apierr"
	"society_connect/internal/authz"
	"society_connect/internal/middleware"
	"society_connect/internal/models"
	"society_connect/internal/response"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

type initiatePaymentInput struct {
	BillID        uint    `json:"bill_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	TransactionID string  `json:"transaction_id"`
	PaymentMethod string  `json:"payment_method"`
	Metadata      string  `json:"metadata"`
}

// Initiate records a payment attempt against a bill. Residents can only
// pay bills for their own flat.
func (pc *PaymentController) Initiate(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input initiatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	var bill models.MaintenanceBill
	if err := pc.DB.First(&bill, input.BillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Bill not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if authz.Role(user.Role).IsResident() && bill.FlatNumber != user.FlatNumber {
		response.Error(c, apierr.Forbidden("You cannot pay this bill"))
		return
	}

	txID := input.TransactionID
	if txID == "" {
		txID = uuid.NewString()
	}
	method := input.PaymentMethod
	if method == "" {
		method = "razorpay"
	}

	payment := models.Payment{
		BillID:        bill.ID,
		PayerID:       user.ID,
		Amount:        input.Amount,
		Status:        "initiated",
		TransactionID: txID,
		PaymentMethod: method,
		Metadata:      input.Metadata,
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment initiated", gin.H{"payment": payment})
}

type updatePaymentInput struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

// UpdateStatus records the gateway outcome. A successful payment also
// marks the bill paid; the two writes are sequential and independent, so
// a crash in between leaves a reconcilable pending bill.
func (pc *PaymentController) UpdateStatus(c *gin.Context) {
	var payment models.Payment
	if err := pc.DB.First(&payment, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Payment not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input updatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	payment.Status = input.Status
	payment.Remarks = input.Remarks
	if err := pc.DB.Save(&payment).Error; err != nil {
		response.Error(c, err)
		return
	}

	if payment.Status == "successful" {
		if err := pc.settleBill(payment.BillID); err != nil {
			response.Error(c, err)
			return
		}
	}

	response.OK(c, "Payment updated", gin.H{"payment": payment})
}

// settleBill marks the bill behind a successful payment as paid. The bill
// write follows the payment write with no shared transaction, so a crash
// in between leaves a reconcilable pending bill, but a store error must
// still reach the caller.
func (pc *PaymentController) settleBill(billID uint) error {
	var bill models.MaintenanceBill
	if err := pc.DB.First(&bill, billID).Error; err != nil {
		return err
	}
	now := time.Now()
	bill.Status = "paid"
	bill.PaidAt = &now
	return pc.DB.Save(&bill).Error
}

// List returns payments, residents scoped to their own.
func (pc *PaymentController) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	query := pc.DB.Model(&models.Payment{}).Preload("Bill").Preload("Payer")
	if authz.Role(user.Role).IsResident() {
		query = query.Where("payer_id = ?", user.ID)
	}

	var payments []models.Payment
	if err := query.Order("created_at DESC").Find(&payments).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments fetched", gin.H{"payments": payments})
}
