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

type PollController struct {
	DB *gorm.DB
}

func NewPollController(db *gorm.DB) *PollController {
	return &PollController{DB: db}
}

type createPollInput struct {
	Question string     `json:"question" binding:"required"`
	Options  []string   `json:"options" binding:"required,min=2"`
	ClosesAt *time.Time `json:"closes_at"`
}

func (pc *PollController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input createPollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	poll := models.Poll{
		Question:  input.Question,
		CreatedBy: user.ID,
		ClosesAt:  input.ClosesAt,
		IsActive:  true,
	}
	for _, label := range input.Options {
		poll.Options = append(poll.Options, models.PollOption{Label: label})
	}

	if err := pc.DB.Create(&poll).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Poll created", gin.H{"poll": poll})
}

func (pc *PollController) List(c *gin.Context) {
	var polls []models.Poll
	err := pc.DB.Preload("Options").Preload("Responses").Preload("Creator").
		Order("created_at DESC").Find(&polls).Error
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Polls fetched", gin.H{"polls": polls})
}

type voteInput struct {
	OptionID uint `json:"option_id" binding:"required"`
}

// Vote records one response per user per poll. A second vote by the same
// user is rejected whatever the option; closed polls reject all votes.
func (pc *PollController) Vote(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input voteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	var poll models.Poll
	err := pc.DB.Preload("Options").Preload("Responses").First(&poll, c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Poll not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if poll.IsClosed(time.Now()) {
		response.Error(c, apierr.Validation("Poll is closed"))
		return
	}
	if poll.HasVoted(user.ID) {
		response.Error(c, apierr.Validation("User has already voted"))
		return
	}

	option := poll.OptionByID(input.OptionID)
	if option == nil {
		response.Error(c, apierr.Validation("Invalid option"))
		return
	}

	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(option).Update("votes", option.Votes+1).Error; err != nil {
			return err
		}
		return tx.Create(&models.PollResponse{
			PollID:   poll.ID,
			UserID:   user.ID,
			OptionID: option.ID,
			VotedAt:  time.Now(),
		}).Error
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vote recorded", gin.H{"poll": poll})
}

// Close deactivates a poll. The creator or a privileged role only.
func (pc *PollController) Close(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var poll models.Poll
	if err := pc.DB.First(&poll, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Poll not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if poll.CreatedBy != user.ID && !authz.Role(user.Role).IsPrivileged() {
		response.Error(c, apierr.Forbidden("You cannot close this poll"))
		return
	}

	now := time.Now()
	poll.IsActive = false
	poll.ClosesAt = &now
	if err := pc.DB.Save(&poll).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Poll closed", gin.H{"poll": poll})
}

func (pc *PollController) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var poll models.Poll
	if err := pc.DB.First(&poll, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("Poll not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if poll.CreatedBy != user.ID && !authz.Role(user.Role).IsPrivileged() {
		response.Error(c, apierr.Forbidden("You cannot delete this poll"))
		return
	}

	if err := pc.DB.Delete(&poll).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Poll deleted", gin.H{})
}
