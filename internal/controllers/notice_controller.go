package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"society_connect/internal/apierr"
	"society_connect/internal/authz"
	"society_connect/internal/mailer"
	"society_connect/internal/middleware"
	"society_connect/internal/models"
	"society_connect/internal/response"
)

type NoticeController struct {
	DB     *gorm.DB
	Mailer *mailer.Mailer
}

func NewNoticeController(db *gorm.DB, m *mailer.Mailer) *NoticeController {
	return &NoticeController{DB: db, Mailer: m}
}

type createNoticeInput struct {
	Title       string     `json:"title" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	Audience    []string   `json:"audience"`
	ExpiresAt   *time.Time `json:"expires_at"`
	IsPinned    bool       `json:"is_pinned"`
	Attachments []struct {
		FileName string `json:"file_name"`
		URL      string `json:"url"`
	} `json:"attachments"`
}

// Create publishes a notice and fans out email to its audience. Email
// failures are logged, never surfaced.
func (nc *NoticeController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input createNoticeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	audience := input.Audience
	if len(audience) == 0 {
		audience = []string{"all"}
	}

	notice := models.Notice{
		Title:     input.Title,
		Content:   input.Content,
		Audience:  audience,
		CreatedBy: user.ID,
		ExpiresAt: input.ExpiresAt,
		IsPinned:  input.IsPinned,
	}
	for _, a := range input.Attachments {
		notice.Attachments = append(notice.Attachments, models.NoticeAttachment{
			FileName: a.FileName, URL: a.URL,
		})
	}

	if err := nc.DB.Create(&notice).Error; err != nil {
		response.Error(c, err)
		return
	}

	nc.notifyAudience(notice)

	response.Created(c, "Notice created", gin.H{"notice": notice})
}

// List returns notices, pinned first, optionally filtered by audience.
func (nc *NoticeController) List(c *gin.Context) {
	query := nc.DB.Model(&models.Notice{}).Preload("Creator").Preload("Attachments")

	if audience := c.Query("audience"); audience != "" && audience != "all" {
		query = query.Where("? = ANY(audience) OR 'all' = ANY(audience)", audience)
	}

	var notices []models.Notice
	if err := query.Order("is_pinned DESC, created_at DESC").Find(&notices).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notices fetched", gin.H{"notices": notices})
}

type updateNoticeInput struct {
	Title     *string    `json:"title"`
	Content   *string    `json:"content"`
	Audience  []string   `json:"audience"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsPinned  *bool      `json:"is_pinned"`
}

func (nc *NoticeController) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var notice models.Notice
	if err := nc.DB.First(&notice, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Notice not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if notice.CreatedBy != user.ID && user.Role != string(authz.RoleAdmin) {
		response.Error(c, apierr.Forbidden("You cannot edit this notice"))
		return
	}

	var input updateNoticeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	if input.Title != nil {
		notice.Title = *input.Title
	}
	if input.Content != nil {
		notice.Content = *input.Content
	}
	if len(input.Audience) > 0 {
		notice.Audience = input.Audience
	}
	if input.ExpiresAt != nil {
		notice.ExpiresAt = input.ExpiresAt
	}
	if input.IsPinned != nil {
		notice.IsPinned = *input.IsPinned
	}

	if err := nc.DB.Save(&notice).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notice updated", gin.H{"notice": notice})
}

func (nc *NoticeController) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var notice models.Notice
	if err := nc.DB.First(&notice, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Notice not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if notice.CreatedBy != user.ID && user.Role != string(authz.RoleAdmin) {
		response.Error(c, apierr.Forbidden("You cannot delete this notice"))
		return
	}

	if err := nc.DB.Delete(&notice).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notice deleted", gin.H{})
}

// audienceRoles maps notice audience groups to user roles.
var audienceRoles = map[string]string{
	"owners":    string(authz.RoleOwner),
	"tenants":   string(authz.RoleTenant),
	"committee": string(authz.RoleCommittee),
}

func (nc *NoticeController) notifyAudience(notice models.Notice) {
	query := nc.DB.Model(&models.User{}).Where("is_active = ?", true)

	broadcast := false
	var roles []string
	for _, group := range notice.Audience {
		if group == "all" {
			broadcast = true
			break
		}
		if role, ok := audienceRoles[group]; ok {
			roles = append(roles, role)
		}
	}
	if !broadcast {
		if len(roles) == 0 {
			return
		}
		query = query.Where("role IN ?", roles)
	}

	var emails []string
	if err := query.Pluck("email", &emails).Error; err != nil || len(emails) == 0 {
		return
	}

	body := fmt.Sprintf("<h1>%s</h1><p>%s</p>", notice.Title, notice.Content)
	nc.Mailer.Send(emails, "[Society Connect] "+notice.Title, body)
}
