package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"depresscare-server/internal/middleware"
	"depresscare-server/internal/models"
	"depresscare-server/internal/reports"
	"depresscare-server/internal/utils"
)

// AdminHandler handles the admin surface: user management, psychiatrist
// enrollment and report export.
type AdminHandler struct {
	DB      *gorm.DB
	Reports *reports.Generator
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *gorm.DB, reportGen *reports.Generator) *AdminHandler {
	return &AdminHandler{DB: db, Reports: reportGen}
}

// GetUsers lists all users, newest first.
func (h *AdminHandler) GetUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Order("created_at desc").Find(&users).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch users: "+err.Error())
		return
	}

	sanitized := make([]models.UserSanitized, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitize()
	}

	utils.Success(c, "Users fetched successfully", sanitized)
}

// UpdateUserRoleRequest represents the request body for a role change.
type UpdateUserRoleRequest struct {
	Role models.Role `json:"role" binding:"required,oneof=patient psychiatrist admin internal_management"`
}

// UpdateUserRole changes a user's role. Admins cannot drop their own admin
// privileges.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	adminID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateUserRoleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if user.ID == adminID && req.Role != models.RoleAdmin {
		utils.Forbidden(c, "Cannot remove your own admin privileges")
		return
	}

	user.Role = req.Role
	if err := h.DB.Save(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to update user role: "+err.Error())
		return
	}

	utils.Success(c, "User role updated", gin.H{
		"userId":  user.ID,
		"newRole": user.Role,
	})
}

// EnrollPsychiatristRequest represents the request body for enrollment.
type EnrollPsychiatristRequest struct {
	UserID            string `json:"userId" binding:"required,uuid"`
	LicenseNumber     string `json:"licenseNumber" binding:"required,max=50"`
	Qualifications    string `json:"qualifications"`
	Specialization    string `json:"specialization"`
	YearsOfExperience int    `json:"yearsOfExperience" binding:"min=0"`
	Bio               string `json:"bio"`
}

// EnrollPsychiatrist promotes an existing user to psychiatrist and creates
// their professional profile in one transaction.
func (h *AdminHandler) EnrollPsychiatrist(c *gin.Context) {
	var req EnrollPsychiatristRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", req.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var count int64
	if err := h.DB.Model(&models.PsychiatristProfile{}).
		Where("user_id = ?", req.UserID).
		Count(&count).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if count > 0 {
		utils.BadRequest(c, "User is already a psychiatrist")
		return
	}

	profile := models.PsychiatristProfile{
		UserID:            req.UserID,
		LicenseNumber:     req.LicenseNumber,
		Qualifications:    req.Qualifications,
		Specialization:    req.Specialization,
		YearsOfExperience: req.YearsOfExperience,
		Bio:               req.Bio,
		Available:         true,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		user.Role = models.RolePsychiatrist
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to enroll psychiatrist: "+err.Error())
		return
	}

	utils.Created(c, "Psychiatrist enrolled successfully", profile)
}

// GenerateReport builds a report of the requested type and streams it in the
// requested format. A metadata row is stored for every export.
func (h *AdminHandler) GenerateReport(c *gin.Context) {
	adminID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	reportType := models.ReportType(c.Param("type"))
	switch reportType {
	case models.ReportUserStats, models.ReportAppointmentStats, models.ReportAssessmentSummary:
	default:
		utils.BadRequest(c, "Invalid report type")
		return
	}

	format := reports.Format(c.DefaultQuery("format", "pdf"))

	var from, to *time.Time
	if s := c.Query("startDate"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			utils.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
			return
		}
		from = &parsed
	}
	if s := c.Query("endDate"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			utils.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
			return
		}
		to = &parsed
	}

	result, err := h.Reports.Generate(reportType, format, from, to)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate report: "+err.Error())
		return
	}

	record := models.Report{
		ReportType:  reportType,
		GeneratedBy: adminID,
		FileURL:     "/reports/" + result.Filename,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to store report metadata: "+err.Error())
		return
	}

	if format == reports.FormatJSON {
		utils.Success(c, "Report generated successfully", result.Data)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+result.Filename)
	c.Data(200, result.ContentType, result.Bytes)
}
