package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"society_connect/internal/apierr"
	"society_connect/internal/authz"
	"society_connect/internal/middleware"
	"society_connect/internal/models"
	"society_connect/internal/response"
)

type AuthController struct {
	DB   *gorm.DB
	Auth *middleware.Auth
}

func NewAuthController(db *gorm.DB, auth *middleware.Auth) *AuthController {
	return &AuthController{DB: db, Auth: auth}
}

type registerInput struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone"`
	FlatNumber string `json:"flat_number"`
	GateNumber string `json:"gate_number"`
	Role       string `json:"role" binding:"required"`
}

// Register creates a resident or security account awaiting approval.
func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	role := authz.Role(strings.ToLower(strings.TrimSpace(input.Role)))
	if !authz.HasRole(role, authz.RoleOwner, authz.RoleTenant, authz.RoleSecurity) {
		response.Error(c, apierr.Validation("Invalid role. Must be owner, tenant, or security"))
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	user := models.User{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      strings.ToLower(input.Email),
		Password:   hashed,
		Phone:      input.Phone,
		Role:       string(role),
		IsActive:   true,
		IsApproved: false,
	}
	if role == authz.RoleSecurity {
		// Security users are keyed by gate; mirror it into the flat
		// field so location lookups stay uniform.
		gate := input.GateNumber
		if gate == "" {
			gate = input.FlatNumber
		}
		user.GateNumber = gate
		user.FlatNumber = gate
	} else {
		user.FlatNumber = input.FlatNumber
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			response.Error(c, apierr.Validation("User already exists with this email"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Created(c, "User registered successfully. Please wait for admin approval.", gin.H{
		"user": safeUser(user),
	})
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an active, approved user and issues a token.
func (ac *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	var user models.User
	err := ac.DB.Where("email = ? AND is_active = ?", strings.ToLower(input.Email), true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, apierr.Unauthorized("Invalid credentials"))
			return
		}
		response.Error(c, err)
		return
	}

	if !user.IsApproved && user.Role != string(authz.RoleAdmin) {
		response.Error(c, apierr.Forbidden("Your account is pending approval. Please wait for admin approval."))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.Error(c, apierr.Unauthorized("Invalid credentials"))
		return
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := ac.DB.Save(&user).Error; err != nil {
		response.Error(c, err)
		return
	}

	token, err := ac.Auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token": token,
		"user":  safeUser(user),
	})
}

// Logout revokes the presented token.
func (ac *AuthController) Logout(c *gin.Context) {
	if token := c.GetString("token"); token != "" {
		ac.Auth.Revoke(c, token)
	}
	response.OK(c, "Logged out", gin.H{})
}

// Me returns the authenticated user's profile.
func (ac *AuthController) Me(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	response.OK(c, "Profile fetched", gin.H{"user": safeUser(user)})
}

type bootstrapInput struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone"`
	FlatNumber string `json:"flat_number"`
}

// Bootstrap creates the first admin account. Allowed only while the user
// table is empty; any later call is a permission failure.
func (ac *AuthController) Bootstrap(c *gin.Context) {
	var count int64
	if err := ac.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		response.Error(c, err)
		return
	}
	if err := checkBootstrapAllowed(count); err != nil {
		response.Error(c, err)
		return
	}

	var input bootstrapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apierr.Validation(err.Error()))
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	user := models.User{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      strings.ToLower(input.Email),
		Password:   hashed,
		Phone:      input.Phone,
		FlatNumber: input.FlatNumber,
		Role:       string(authz.RoleAdmin),
		IsActive:   true,
		IsApproved: true,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Admin user created. Please login to continue.", gin.H{
		"user": gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}

// checkBootstrapAllowed permits admin bootstrap only while no user
// exists. Any later call is a permission failure, not a conflict.
func checkBootstrapAllowed(userCount int64) error {
	if userCount > 0 {
		return apierr.Forbidden("Admin bootstrap not allowed after initial setup")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isUniqueViolation(err error) bool {
	if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

func safeUser(user models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"email":         user.Email,
		"phone":         user.Phone,
		"role":          user.Role,
		"flat_number":   user.FlatNumber,
		"gate_number":   user.GateNumber,
		"is_active":     user.IsActive,
		"is_approved":   user.IsApproved,
		"last_login_at": user.LastLoginAt,
	}
}
