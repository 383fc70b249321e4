package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"society_connect/internal/apierr"
	"society_connect/internal/authz"
	"society_connect/internal/middleware"
	"society_connect/internal/models"
	"society_connect/internal/response"
)

type MaintenanceController struct {
	DB *gorm.DB
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{DB: db}
}

type createBillInput struct {
	FlatNumber        string    `json:"flat_number" binding:"required"`
	OwnerID           uint      `json:"owner_id" binding:"required"`
	PeriodStart       time.Time `json:"period_start" binding:"required"`
	PeriodEnd         time.Time `json:"period_end" binding:"required"`
	Amount            float64   `json:"amount" binding:"required"`
	MaintenanceCharge float64   `json:"maintenance_charge"`
	ParkingCharge     float64   `json:"parking_charge"`
	SinkingFund       float64   `json:"sinking_fund"`
	OtherCharge       float64   `json:"other_charge"`
	DueDate           time.Time `json:"due_date" binding:"required"`
	Notes             string    `json:"notes"`
}

func (mc *MaintenanceController) Create(c *gin.Context) {
	var input createBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	bill := models.MaintenanceBill{
		FlatNumber:        input.FlatNumber,
		OwnerID:           input.OwnerID,
		PeriodStart:       input.PeriodStart,
		PeriodEnd:         input.PeriodEnd,
		Amount:            input.Amount,
		MaintenanceCharge: input.MaintenanceCharge,
		ParkingCharge:     input.ParkingCharge,
		SinkingFund:       input.SinkingFund,
		OtherCharge:       input.OtherCharge,
		DueDate:           input.DueDate,
		Status:            "pending",
		Notes:             input.Notes,
	}
	if err := mc.DB.Create(&bill).Error; err != nil {
		if isUniqueViolation(err) {
			response.Error(c, apierr.Validation("A bill for this flat and period already exists"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Created(c, "Maintenance bill created", gin.H{"bill": bill})
}

// List returns bills, residents scoped to their own flat.
func (mc *MaintenanceController) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	query := mc.DB.Model(&models.MaintenanceBill{}).Preload("Owner")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if authz.Role(user.Role).IsResident() {
		query = query.Where("flat_number = ?", user.FlatNumber)
	}

	var bills []models.MaintenanceBill
	if err := query.Order("due_date ASC").Find(&bills).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills fetched", gin.H{"bills": bills})
}

func (mc *MaintenanceController) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var bill models.MaintenanceBill
	if err := mc.DB.Preload("Owner").First(&bill, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Bill not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if authz.Role(user.Role).IsResident() && bill.FlatNumber != user.FlatNumber {
		response.Error(c, apierr.Forbidden("You cannot view this bill"))
		return
	}

	response.OK(c, "Bill fetched", gin.H{"bill": bill})
}

type updateBillInput struct {
	Amount            *float64   `json:"amount"`
	MaintenanceCharge *float64   `json:"maintenance_charge"`
	ParkingCharge     *float64   `json:"parking_charge"`
	SinkingFund       *float64   `json:"sinking_fund"`
	OtherCharge       *float64   `json:"other_charge"`
	DueDate           *time.Time `json:"due_date"`
	Status            *string    `json:"status"`
	Notes             *string    `json:"notes"`
}

func (mc *MaintenanceController) Update(c *gin.Context) {
	var bill models.MaintenanceBill
	if err := mc.DB.First(&bill, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Bill not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input updateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	if input.Amount != nil {
		bill.Amount = *input.Amount
	}
	if input.MaintenanceCharge != nil {
		bill.MaintenanceCharge = *input.MaintenanceCharge
	}
	if input.ParkingCharge != nil {
		bill.ParkingCharge = *input.ParkingCharge
	}
	if input.SinkingFund != nil {
		bill.SinkingFund = *input.SinkingFund
	}
	if input.OtherCharge != nil {
		bill.OtherCharge = *input.OtherCharge
	}
	if input.DueDate != nil {
		bill.DueDate = *input.DueDate
	}
	if input.Notes != nil {
		bill.Notes = *input.Notes
	}
	if input.Status != nil {
		bill.Status = *input.Status
	}
	if bill.Status == "paid" && bill.PaidAt == nil {
		now := time.Now()
		bill.PaidAt = &now
	}

	if err := mc.DB.Save(&bill).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated", gin.H{"bill": bill})
}

func (mc *MaintenanceController) Delete(c *gin.Context) {
	var bill models.MaintenanceBill
	if err := mc.DB.First(&bill, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Bill not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := mc.DB.Delete(&bill).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill deleted", gin.H{})
}
