package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"society_connect/internal/apierr"
	"society_connect/internal/authz"
	"society_connect/internal/middleware"
	"society_connect/internal/models"
	"society_connect/internal/response"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// List returns users. Residents only see approved, active members and
// never security accounts; privileged roles can filter freely.
func (uc *UserController) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	query := uc.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if approved := c.Query("is_approved"); approved != "" {
		query = query.Where("is_approved = ?", approved == "true")
	}

	if authz.Role(user.Role).IsResident() {
		query = query.Where("is_approved = ? AND is_active = ? AND role <> ?",
			true, true, string(authz.RoleSecurity))
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users fetched", gin.H{"users": users})
}

func (uc *UserController) Get(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "User fetched", gin.H{"user": user})
}

type updateUserInput struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role"`
	IsActive   *bool   `json:"is_active"`
	IsApproved *bool   `json:"is_approved"`
}

// Update lets committee/admin approve, deactivate or re-role a user.
func (uc *UserController) Update(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	if input.Role != nil {
		if !authz.Role(*input.Role).Valid() {
			response.Error(c, apierr.Validation("Invalid role: "+*input.Role))
			return
		}
		user.Role = *input.Role
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsApproved != nil {
		user.IsApproved = *input.IsApproved
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated successfully", gin.H{"user": user})
}

type updateProfileInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Password  *string `json:"password"`
}

// UpdateProfile lets any authenticated user edit their own details.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			response.Error(c, apierr.Validation("Password must be at least 6 characters"))
			return
		}
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			response.Error(c, err)
			return
		}
		user.Password = hashed
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated", gin.H{"user": safeUser(user)})
}

func (uc *UserController) Delete(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User deleted", gin.H{})
}
