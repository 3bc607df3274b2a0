package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"depresscare-server/internal/config"
	"depresscare-server/internal/middleware"
	"depresscare-server/internal/models"
	"depresscare-server/internal/utils"
)

// AuthHandler handles registration, login and session management.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Gender      string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

// Register handles new patient registration. The user row and the patient
// profile are created in one transaction.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.BadRequest(c, "User with this email already exists")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	user := models.User{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Role:        models.RolePatient,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.PatientProfile{UserID: user.ID}).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to register user: "+err.Error())
		return
	}

	token, err := utils.GenerateToken(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	utils.Created(c, "User registered successfully", gin.H{
		"user":  user.Sanitize(),
		"token": token,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user and records a login session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	session := models.UserSession{
		UserID:    user.ID,
		LoginTime: time.Now(),
		IPAddress: c.ClientIP(),
	}
	if err := h.DB.Create(&session).Error; err != nil {
		utils.InternalServerError(c, "Failed to record session: "+err.Error())
		return
	}

	token, err := utils.GenerateToken(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"user":  user.Sanitize(),
		"token": token,
	})
}

// Logout closes the caller's most recent open session.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var session models.UserSession
	err := h.DB.Where("user_id = ? AND logout_time IS NULL", userID).
		Order("login_time desc").
		First(&session).Error
	if err == nil {
		now := time.Now()
		session.LogoutTime = &now
		if err := h.DB.Save(&session).Error; err != nil {
			utils.InternalServerError(c, "Failed to close session: "+err.Error())
			return
		}
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "Logout successful", nil)
}

// GetMe returns the authenticated user's profile.
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var user models.User
	if err := h.DB.Preload("PatientProfile").Preload("PsychiatristProfile").
		First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Profile fetched successfully", gin.H{
		"user":                user.Sanitize(),
		"patientProfile":      user.PatientProfile,
		"psychiatristProfile": user.PsychiatristProfile,
	})
}
