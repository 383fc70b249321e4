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

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

type createComplaintInput struct {
	Subject     string     `json:"subject" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func (cc *ComplaintController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input createComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	complaint := models.Complaint{
		Subject:     input.Subject,
		Description: input.Description,
		Category:    defaultString(input.Category, "other"),
		Priority:    defaultString(input.Priority, "medium"),
		DueDate:     input.DueDate,
		CreatedBy:   user.ID,
		Status:      "open",
	}
	if err := cc.DB.Create(&complaint).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Complaint submitted", gin.H{"complaint": complaint})
}

// List returns complaints; non-privileged users see only their own.
func (cc *ComplaintController) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	query := cc.DB.Model(&models.Complaint{}).Preload("Creator").Preload("Assignee")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if !authz.Role(user.Role).IsPrivileged() {
		query = query.Where("created_by = ?", user.ID)
	}

	var complaints []models.Complaint
	if err := query.Order("is_pinned DESC, created_at DESC").Find(&complaints).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Complaints fetched", gin.H{"complaints": complaints})
}

type updateComplaintInput struct {
	Subject         *string    `json:"subject"`
	Description     *string    `json:"description"`
	Category        *string    `json:"category"`
	Status          *string    `json:"status"`
	AssignedTo      *uint      `json:"assigned_to"`
	ResolutionNotes *string    `json:"resolution_notes"`
	Priority        *string    `json:"priority"`
	DueDate         *time.Time `json:"due_date"`
	IsPinned        *bool      `json:"is_pinned"`
}

// Update edits a complaint. Only the creator or a privileged role may
// touch it, and a resolved complaint's status is frozen for everyone.
func (cc *ComplaintController) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var complaint models.Complaint
	if err := cc.DB.First(&complaint, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Complaint not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if !authz.Role(user.Role).IsPrivileged() && complaint.CreatedBy != user.ID {
		response.Error(c, apierr.Forbidden("You cannot update this complaint"))
		return
	}

	var input updateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	if err := checkComplaintStatusChange(complaint.Status, input.Status); err != nil {
		response.Error(c, err)
		return
	}

	if input.Subject != nil {
		complaint.Subject = *input.Subject
	}
	if input.Description != nil {
		complaint.Description = *input.Description
	}
	if input.Category != nil {
		complaint.Category = *input.Category
	}
	if input.Status != nil {
		complaint.Status = *input.Status
	}
	if input.AssignedTo != nil {
		complaint.AssignedTo = input.AssignedTo
	}
	if input.ResolutionNotes != nil {
		complaint.ResolutionNotes = *input.ResolutionNotes
	}
	if input.Priority != nil {
		complaint.Priority = *input.Priority
	}
	if input.DueDate != nil {
		complaint.DueDate = input.DueDate
	}
	if input.IsPinned != nil {
		complaint.IsPinned = *input.IsPinned
	}

	if err := cc.DB.Save(&complaint).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Complaint updated", gin.H{"complaint": complaint})
}

// Delete removes a complaint. Everyone, admin included, may only delete
// complaints they created themselves.
func (cc *ComplaintController) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var complaint models.Complaint
	if err := cc.DB.First(&complaint, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Complaint not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if complaint.CreatedBy != user.ID {
		if user.Role == string(authz.RoleAdmin) {
			response.Error(c, apierr.Forbidden("You can only delete complaints you created"))
			return
		}
		response.Error(c, apierr.Forbidden("You cannot delete this complaint"))
		return
	}

	if err := cc.DB.Delete(&complaint).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Complaint deleted", gin.H{})
}

// checkComplaintStatusChange rejects moving a resolved complaint to any
// other status. The freeze applies to every role, admin included.
func checkComplaintStatusChange(current string, requested *string) error {
	if current == models.ComplaintStatusResolved &&
		requested != nil && *requested != models.ComplaintStatusResolved {
		return apierr.StateConflict("Cannot change status of resolved complaint")
	}
	return nil
}

func defaultString(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
