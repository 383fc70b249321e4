package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"society_connect/internal/middleware"
	"society_connect/internal/models"
	"society_connect/internal/response"
	"society_connect/internal/workflow"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Get assembles the landing-page snapshot: latest notices, the caller's
// complaints, active polls, upcoming visitors for their flat, and the
// next unpaid bill.
func (dc *DashboardController) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var notices []models.Notice
	if err := dc.DB.Order("created_at DESC").Limit(3).Find(&notices).Error; err != nil {
		response.Error(c, err)
		return
	}

	var complaints []models.Complaint
	err := dc.DB.Where("created_by = ?", user.ID).
		Order("created_at DESC").Limit(3).Find(&complaints).Error
	if err != nil {
		response.Error(c, err)
		return
	}

	var activePolls []models.Poll
	err = dc.DB.Preload("Options").Where("is_active = ?", true).
		Order("created_at DESC").Limit(3).Find(&activePolls).Error
	if err != nil {
		response.Error(c, err)
		return
	}

	var upcomingVisitors []models.VisitorLog
	err = dc.DB.Where("flat_to_visit = ? AND status IN ?", user.FlatNumber,
		[]string{string(workflow.StatusScheduled), string(workflow.StatusCheckedIn)}).
		Order("expected_time ASC").Limit(3).Find(&upcomingVisitors).Error
	if err != nil {
		response.Error(c, err)
		return
	}

	var bills []models.MaintenanceBill
	err = dc.DB.Where("flat_number = ? AND status <> ?", user.FlatNumber, "paid").
		Order("due_date ASC").Limit(1).Find(&bills).Error
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard fetched", gin.H{
		"notices":           notices,
		"complaints":        complaints,
		"active_polls":      activePolls,
		"upcoming_visitors": upcomingVisitors,
		"bills":             bills,
	})
}
