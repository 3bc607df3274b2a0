package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"depresscare-server/internal/middleware"
	"depresscare-server/internal/models"
	"depresscare-server/internal/services/appointment"
	"depresscare-server/internal/utils"
)

// PsychiatristHandler handles the psychiatrist-facing surface: profile,
// patient roster, appointment management, recommendations and prescriptions.
type PsychiatristHandler struct {
	DB           *gorm.DB
	Appointments *appointment.Service
}

// NewPsychiatristHandler creates a new PsychiatristHandler.
func NewPsychiatristHandler(db *gorm.DB, appointments *appointment.Service) *PsychiatristHandler {
	return &PsychiatristHandler{DB: db, Appointments: appointments}
}

// GetProfile returns the psychiatrist's own profile with user details.
func (h *PsychiatristHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var profile models.PsychiatristProfile
	if err := h.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Profile not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "Profile fetched successfully", gin.H{
		"user":    user.Sanitize(),
		"profile": profile,
	})
}

// UpdateProfileRequest represents the request body for a profile update.
// Pointer fields distinguish "not provided" from zero values.
type UpdateProfileRequest struct {
	FullName          *string `json:"fullName"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Phone             *string `json:"phone"`
	Gender            *string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	LicenseNumber     *string `json:"licenseNumber"`
	Qualifications    *string `json:"qualifications"`
	Specialization    *string `json:"specialization"`
	YearsOfExperience *int    `json:"yearsOfExperience"`
	Bio               *string `json:"bio"`
	Available         *bool   `json:"available"`
}

// UpdateProfile updates the psychiatrist's user row and profile row in one
// transaction, enforcing email and license-number uniqueness.
func (h *PsychiatristHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var conflictMsg string
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		if req.Email != nil && *req.Email != user.Email {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("email = ? AND id <> ?", *req.Email, userID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				conflictMsg = "Email already in use by another account"
				return gorm.ErrDuplicatedKey
			}
			user.Email = *req.Email
		}
		if req.FullName != nil {
			user.FullName = *req.FullName
		}
		if req.Phone != nil {
			user.Phone = *req.Phone
		}
		if req.Gender != nil {
			user.Gender = *req.Gender
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		var profile models.PsychiatristProfile
		if err := tx.First(&profile, "user_id = ?", userID).Error; err != nil {
			return err
		}

		if req.LicenseNumber != nil && *req.LicenseNumber != profile.LicenseNumber {
			var count int64
			if err := tx.Model(&models.PsychiatristProfile{}).
				Where("license_number = ? AND user_id <> ?", *req.LicenseNumber, userID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				conflictMsg = "License number already in use by another psychiatrist"
				return gorm.ErrDuplicatedKey
			}
			profile.LicenseNumber = *req.LicenseNumber
		}
		if req.Qualifications != nil {
			profile.Qualifications = *req.Qualifications
		}
		if req.Specialization != nil {
			profile.Specialization = *req.Specialization
		}
		if req.YearsOfExperience != nil {
			profile.YearsOfExperience = *req.YearsOfExperience
		}
		if req.Bio != nil {
			profile.Bio = *req.Bio
		}
		if req.Available != nil {
			profile.Available = *req.Available
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		if conflictMsg != "" {
			utils.BadRequest(c, conflictMsg)
		} else if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Profile not found")
		} else {
			utils.InternalServerError(c, "Failed to update profile: "+err.Error())
		}
		return
	}

	utils.Success(c, "Profile updated successfully", nil)
}

// hasAppointmentWith reports whether the patient has any appointment with
// this psychiatrist. Used as the access guard for patient data.
func (h *PsychiatristHandler) hasAppointmentWith(psychiatristID, patientID string) (bool, error) {
	var count int64
	err := h.DB.Model(&models.Appointment{}).
		Where("psychiatrist_id = ? AND patient_id = ?", psychiatristID, patientID).
		Count(&count).Error
	return count > 0, err
}

// GetPatients lists the distinct patients who have appointments with the
// psychiatrist.
func (h *PsychiatristHandler) GetPatients(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var patientIDs []string
	err := h.DB.Model(&models.Appointment{}).
		Where("psychiatrist_id = ?", userID).
		Distinct("patient_id").
		Pluck("patient_id", &patientIDs).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	if len(patientIDs) == 0 {
		utils.Success(c, "No patients found for this psychiatrist", []models.UserSanitized{})
		return
	}

	var patients []models.User
	err = h.DB.Preload("PatientProfile").
		Where("id IN ?", patientIDs).
		Order("full_name asc").
		Find(&patients).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	type patientResult struct {
		models.UserSanitized
		Profile *models.PatientProfile `json:"patientProfile,omitempty"`
	}
	results := make([]patientResult, len(patients))
	for i, p := range patients {
		results[i] = patientResult{UserSanitized: p.Sanitize(), Profile: p.PatientProfile}
	}

	utils.Success(c, "Patients fetched successfully", results)
}

// GetPatientDetails returns one patient's details, guarded by an existing
// appointment association.
func (h *PsychiatristHandler) GetPatientDetails(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	patientID := c.Param("id")

	associated, err := h.hasAppointmentWith(userID, patientID)
	if err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if !associated {
		utils.Forbidden(c, "Patient not associated with this psychiatrist")
		return
	}

	var patient models.User
	if err := h.DB.Preload("PatientProfile").First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", gin.H{
		"user":           patient.Sanitize(),
		"patientProfile": patient.PatientProfile,
	})
}

// GetPatientAssessments lists a patient's depression forms, guarded by an
// existing appointment association.
func (h *PsychiatristHandler) GetPatientAssessments(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	patientID := c.Param("id")

	associated, err := h.hasAppointmentWith(userID, patientID)
	if err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if !associated {
		utils.Forbidden(c, "Patient not associated with this psychiatrist")
		return
	}

	var forms []models.DepressionForm
	err = h.DB.Preload("Responses.Question").
		Where("patient_id = ?", patientID).
		Order("filled_at desc").
		Find(&forms).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch assessments: "+err.Error())
		return
	}

	utils.Success(c, "Assessments fetched successfully", forms)
}

// GetAppointments lists the psychiatrist's appointments with filters and
// pagination.
func (h *PsychiatristHandler) GetAppointments(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := h.DB.Model(&models.Appointment{}).Where("psychiatrist_id = ?", userID)

	if status := c.QueryArray("status"); len(status) > 0 {
		query = query.Where("status IN ?", status)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("scheduled_time >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("scheduled_time <= ?", to)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.InternalServerError(c, "Failed to count appointments: "+err.Error())
		return
	}

	var appointments []models.Appointment
	err := query.Preload("Patient").
		Order("scheduled_time asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", gin.H{
		"count":       count,
		"totalPages":  (count + int64(limit) - 1) / int64(limit),
		"currentPage": page,
		"items":       appointments,
	})
}

// UpdateAppointmentStatusRequest represents the request body for a status update.
type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=Scheduled Completed Cancelled"`
}

// UpdateAppointmentStatus updates the status of one of the psychiatrist's own
// appointments via the lifecycle service.
func (h *PsychiatristHandler) UpdateAppointmentStatus(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, err := h.Appointments.UpdateStatus(c.Request.Context(), c.Param("id"), userID, req.Status)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	utils.Success(c, "Appointment status updated successfully", appt)
}

// CreateRecommendationRequest represents the request body for a recommendation.
type CreateRecommendationRequest struct {
	PatientID string `json:"patientId" binding:"required,uuid"`
	Content   string `json:"content" binding:"required"`
}

// CreateRecommendation stores advice for a patient, guarded by an existing
// appointment association.
func (h *PsychiatristHandler) CreateRecommendation(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateRecommendationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	associated, err := h.hasAppointmentWith(userID, req.PatientID)
	if err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	if !associated {
		utils.Forbidden(c, "Patient not associated with this psychiatrist")
		return
	}

	recommendation := models.Recommendation{
		PsychiatristID: userID,
		PatientID:      req.PatientID,
		Content:        req.Content,
	}
	if err := h.DB.Create(&recommendation).Error; err != nil {
		utils.InternalServerError(c, "Failed to create recommendation: "+err.Error())
		return
	}

	utils.Created(c, "Recommendation created successfully", recommendation)
}

// UploadPrescriptionRequest represents the request body for a prescription.
type UploadPrescriptionRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required,uuid"`
	DocumentURL   string `json:"documentUrl"`
	Notes         string `json:"notes"`
}

// UploadPrescription attaches a prescription to one of the psychiatrist's own
// appointments.
func (h *PsychiatristHandler) UploadPrescription(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req UploadPrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appt models.Appointment
	err := h.DB.Where("id = ? AND psychiatrist_id = ?", req.AppointmentID, userID).
		First(&appt).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Forbidden(c, "Appointment not found or not authorized")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	prescription := models.Prescription{
		AppointmentID: req.AppointmentID,
		UploadedBy:    userID,
		DocumentURL:   req.DocumentURL,
		Notes:         req.Notes,
	}
	if err := h.DB.Create(&prescription).Error; err != nil {
		utils.InternalServerError(c, "Failed to upload prescription: "+err.Error())
		return
	}

	utils.Created(c, "Prescription uploaded successfully", prescription)
}
