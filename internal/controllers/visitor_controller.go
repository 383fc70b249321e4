package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"society_connect/internal/apierr"
	"society_connect/internal/authz"
	"society_connect/internal/metrics"
	"society_connect/internal/middleware"
	"society_connect/internal/models"
	"society_connect/internal/response"
	"society_connect/internal/workflow"
)

type VisitorController struct {
	DB *gorm.DB
}

func NewVisitorController(db *gorm.DB) *VisitorController {
	return &VisitorController{DB: db}
}

type createVisitorInput struct {
	VisitorName       string    `json:"visitor_name" binding:"required"`
	Purpose           string    `json:"purpose" binding:"required"`
	ContactNumber     string    `json:"contact_number"`
	FlatToVisit       string    `json:"flat_to_visit" binding:"required"`
	ExpectedTime      time.Time `json:"expected_time" binding:"required"`
	Status            string    `json:"status"`
	NeedsApprovalFrom *uint     `json:"needs_approval_from"`
}

// Create logs a visitor. Residents, committee and admin self-schedule;
// security logging a walk-in without an explicit status creates a
// pending_approval record addressed to a resident of the flat.
func (vc *VisitorController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input createVisitorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	status, approved, err := workflow.InitialState(authz.Role(user.Role), workflow.Status(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	visitor := models.VisitorLog{
		VisitorName:       input.VisitorName,
		Purpose:           input.Purpose,
		ContactNumber:     input.ContactNumber,
		FlatToVisit:       input.FlatToVisit,
		ExpectedTime:      input.ExpectedTime,
		Status:            string(status),
		IsApproved:        approved,
		LoggedBy:          user.ID,
		ScheduledBy:       user.ID,
		NeedsApprovalFrom: input.NeedsApprovalFrom,
	}

	if status == workflow.StatusPendingApproval && visitor.NeedsApprovalFrom == nil {
		residents, err := vc.flatResidents(input.FlatToVisit)
		if err != nil {
			response.Error(c, err)
			return
		}
		visitor.NeedsApprovalFrom = workflow.ResolveApprover(residents)
	}

	if err := vc.DB.Create(&visitor).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Visitor scheduled", gin.H{"visitor": visitor})
}

// List returns the role-scoped visitor list. Admin, security and
// committee see everything; residents see their own flat under the
// scheduledBy visibility rules, plus anything awaiting their decision.
func (vc *VisitorController) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	query := vc.DB.Model(&models.VisitorLog{}).
		Preload("Logger").Preload("Scheduler").Preload("Approver")

	if authz.Role(user.Role).IsResident() {
		residents, err := vc.flatResidents(user.FlatNumber)
		if err != nil {
			response.Error(c, err)
			return
		}
		schedulers := workflow.VisibleSchedulers(user, residents)
		query = query.Where(
			"(flat_to_visit = ? AND scheduled_by IN ?) OR (status = ? AND needs_approval_from = ?)",
			user.FlatNumber, schedulers, string(workflow.StatusPendingApproval), user.ID,
		)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var visitors []models.VisitorLog
	if err := query.Order("expected_time DESC").Find(&visitors).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visitors fetched", gin.H{"visitors": visitors})
}

type securityUpdateInput struct {
	Status string `json:"status"`
}

type residentUpdateInput struct {
	IsApproved *bool  `json:"is_approved"`
	Status     string `json:"status"`
}

type adminUpdateInput struct {
	VisitorName       *string    `json:"visitor_name"`
	Purpose           *string    `json:"purpose"`
	ContactNumber     *string    `json:"contact_number"`
	FlatToVisit       *string    `json:"flat_to_visit"`
	ExpectedTime      *time.Time `json:"expected_time"`
	Status            *string    `json:"status"`
	IsApproved        *bool      `json:"is_approved"`
	NeedsApprovalFrom *uint      `json:"needs_approval_from"`
}

// Update applies the role-dependent mutation: security checks visitors in
// and out, residents decide pending approvals for their flat, committee
// and admin may overwrite anything.
func (vc *VisitorController) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var visitor models.VisitorLog
	if err := vc.DB.First(&visitor, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Visitor record not found"))
			return
		}
		response.Error(c, err)
		return
	}

	role := authz.Role(user.Role)
	switch {
	case role == authz.RoleSecurity:
		if err := vc.securityUpdate(c, &visitor); err != nil {
			response.Error(c, err)
			return
		}
	case role.IsResident():
		if err := vc.residentUpdate(c, user, &visitor); err != nil {
			response.Error(c, err)
			return
		}
	case role.IsPrivileged():
		if err := vc.adminUpdate(c, &visitor); err != nil {
			response.Error(c, err)
			return
		}
	default:
		response.Error(c, apierr.Forbidden("You cannot update this visitor record"))
		return
	}

	if err := vc.DB.Save(&visitor).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visitor updated", gin.H{"visitor": visitor})
}

func (vc *VisitorController) securityUpdate(c *gin.Context, visitor *models.VisitorLog) error {
	var input securityUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		return apierr.Validation(err.Error())
	}

	var action workflow.Action
	switch workflow.Status(input.Status) {
	case workflow.StatusCheckedIn:
		action = workflow.ActionCheckIn
	case workflow.StatusCheckedOut:
		action = workflow.ActionCheckOut
	default:
		return apierr.Forbidden("Security can only check in/out visitors")
	}

	next, err := workflow.Transition(workflow.Status(visitor.Status), authz.RoleSecurity, action)
	metrics.ObserveVisitorTransition(string(action), err == nil)
	if err != nil {
		return err
	}

	now := time.Now()
	visitor.Status = string(next)
	if action == workflow.ActionCheckIn {
		visitor.CheckInTime = &now
	} else {
		visitor.CheckOutTime = &now
	}
	return nil
}

func (vc *VisitorController) residentUpdate(c *gin.Context, user models.User, visitor *models.VisitorLog) error {
	if visitor.FlatToVisit != user.FlatNumber {
		return apierr.Forbidden("You can only approve visitors for your flat")
	}

	var input residentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		return apierr.Validation(err.Error())
	}
	if input.IsApproved == nil {
		return apierr.Forbidden("You can only approve or reject visitors")
	}

	action := workflow.ActionReject
	if *input.IsApproved {
		action = workflow.ActionApprove
	}

	next, err := workflow.Transition(workflow.Status(visitor.Status), authz.Role(user.Role), action)
	metrics.ObserveVisitorTransition(string(action), err == nil)
	if err != nil {
		return err
	}

	visitor.Status = string(next)
	visitor.IsApproved = *input.IsApproved
	approver := user.ID
	visitor.ApprovedBy = &approver
	return nil
}

func (vc *VisitorController) adminUpdate(c *gin.Context, visitor *models.VisitorLog) error {
	var input adminUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		return apierr.Validation(err.Error())
	}

	if input.Status != nil {
		if !workflow.ValidStatus(workflow.Status(*input.Status)) {
			return apierr.Validation("Invalid visitor status: " + *input.Status)
		}
		visitor.Status = *input.Status
	}
	if input.VisitorName != nil {
		visitor.VisitorName = *input.VisitorName
	}
	if input.Purpose != nil {
		visitor.Purpose = *input.Purpose
	}
	if input.ContactNumber != nil {
		visitor.ContactNumber = *input.ContactNumber
	}
	if input.FlatToVisit != nil {
		visitor.FlatToVisit = *input.FlatToVisit
	}
	if input.ExpectedTime != nil {
		visitor.ExpectedTime = *input.ExpectedTime
	}
	if input.IsApproved != nil {
		visitor.IsApproved = *input.IsApproved
	}
	if input.NeedsApprovalFrom != nil {
		visitor.NeedsApprovalFrom = input.NeedsApprovalFrom
	}
	return nil
}

// Delete removes a record. Committee, admin, or the original logger only.
func (vc *VisitorController) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var visitor models.VisitorLog
	if err := vc.DB.First(&visitor, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Visitor record not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if !authz.Role(user.Role).IsPrivileged() && visitor.LoggedBy != user.ID {
		response.Error(c, apierr.Forbidden("You cannot delete this visitor record"))
		return
	}

	if err := vc.DB.Delete(&visitor).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visitor deleted", gin.H{})
}

func (vc *VisitorController) flatResidents(flat string) ([]models.User, error) {
	var residents []models.User
	err := vc.DB.Where("flat_number = ? AND role IN ?", flat,
		[]string{string(authz.RoleOwner), string(authz.RoleTenant)}).Find(&residents).Error
	return residents, err
}
