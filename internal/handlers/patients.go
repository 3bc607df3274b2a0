package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"depresscare-server/internal/middleware"
	"depresscare-server/internal/models"
	"depresscare-server/internal/services/appointment"
	"depresscare-server/internal/utils"
)

// PatientHandler handles the patient-facing surface: psychiatrist search,
// booking, assessments, prescriptions and recommendations.
type PatientHandler struct {
	DB           *gorm.DB
	Appointments *appointment.Service
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB, appointments *appointment.Service) *PatientHandler {
	return &PatientHandler{DB: db, Appointments: appointments}
}

// SearchPsychiatrists lists psychiatrist profiles filtered by search term,
// specialization and availability.
func (h *PatientHandler) SearchPsychiatrists(c *gin.Context) {
	search := c.Query("search")
	specialization := c.Query("specialization")
	availability := c.Query("availability")

	query := h.DB.Model(&models.PsychiatristProfile{}).
		Joins("JOIN users ON users.id = psychiatrist_profiles.user_id")

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("users.full_name LIKE ? OR psychiatrist_profiles.specialization LIKE ?", like, like)
	}
	if specialization != "" {
		query = query.Where("psychiatrist_profiles.specialization = ?", specialization)
	}
	if availability != "" {
		query = query.Where("psychiatrist_profiles.available = ?", availability == "true")
	}

	type psychiatristResult struct {
		UserID            string `json:"userId"`
		FullName          string `json:"fullName"`
		ProfilePicture    string `json:"profilePicture"`
		Specialization    string `json:"specialization"`
		YearsOfExperience int    `json:"yearsOfExperience"`
		Bio               string `json:"bio"`
		Available         bool   `json:"available"`
	}

	var results []psychiatristResult
	err := query.Select(
		"psychiatrist_profiles.user_id, users.full_name, users.profile_picture, " +
			"psychiatrist_profiles.specialization, psychiatrist_profiles.years_of_experience, " +
			"psychiatrist_profiles.bio, psychiatrist_profiles.available").
		Scan(&results).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to search psychiatrists: "+err.Error())
		return
	}

	utils.Success(c, "Psychiatrists fetched successfully", results)
}

// BookAppointmentRequest represents the request body for booking.
type BookAppointmentRequest struct {
	PsychiatristID    string    `json:"psychiatristId" binding:"required,uuid"`
	ScheduledTime     time.Time `json:"scheduledTime" binding:"required"`
	PreviousDiagnosis bool      `json:"previousDiagnosis"`
	Symptoms          string    `json:"symptoms"`
	ShortDescription  string    `json:"shortDescription"`
}

// BookAppointment books an appointment for the authenticated patient.
func (h *PatientHandler) BookAppointment(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, err := h.Appointments.Book(c.Request.Context(), appointment.BookRequest{
		PatientID:         patientID,
		PsychiatristID:    req.PsychiatristID,
		ScheduledTime:     req.ScheduledTime,
		PreviousDiagnosis: req.PreviousDiagnosis,
		Symptoms:          req.Symptoms,
		ShortDescription:  req.ShortDescription,
	})
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	utils.Created(c, "Appointment booked successfully", appt)
}

// CancelAppointment cancels one of the authenticated patient's appointments.
func (h *PatientHandler) CancelAppointment(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.Appointments.Cancel(c.Request.Context(), c.Param("id"), patientID); err != nil {
		respondAppointmentError(c, err)
		return
	}

	utils.Success(c, "Appointment cancelled successfully", nil)
}

// GetAppointmentHistory lists the patient's appointments, optionally filtered
// by status and date range.
func (h *PatientHandler) GetAppointmentHistory(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	query := h.DB.Preload("Psychiatrist").
		Where("patient_id = ?", patientID).
		Order("scheduled_time desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		query = query.Where("scheduled_time BETWEEN ? AND ?", from, to)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// AssessmentResponse is one answered question in a submitted assessment.
type AssessmentResponse struct {
	QuestionID string `json:"questionId" binding:"required,uuid"`
	Score      int    `json:"score" binding:"min=0"`
}

// SubmitAssessmentRequest represents the request body for a self-assessment.
type SubmitAssessmentRequest struct {
	Responses []AssessmentResponse `json:"responses" binding:"required,min=1,dive"`
	Notes     string               `json:"notes"`
}

// SubmitAssessment stores a depression self-assessment. The form and its
// responses are written in one transaction; the total score is summed
// server-side.
func (h *PatientHandler) SubmitAssessment(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req SubmitAssessmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	totalScore := 0
	for _, r := range req.Responses {
		totalScore += r.Score
	}

	form := models.DepressionForm{
		PatientID:  patientID,
		FilledAt:   time.Now(),
		TotalScore: totalScore,
		Notes:      req.Notes,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&form).Error; err != nil {
			return err
		}
		responses := make([]models.FormResponse, len(req.Responses))
		for i, r := range req.Responses {
			responses[i] = models.FormResponse{
				FormID:        form.ID,
				QuestionID:    r.QuestionID,
				ResponseValue: r.Score,
			}
		}
		return tx.Create(&responses).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to submit assessment: "+err.Error())
		return
	}

	utils.Created(c, "Assessment submitted successfully", form)
}

// GetPrescriptions lists prescriptions attached to the patient's appointments.
func (h *PatientHandler) GetPrescriptions(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var prescriptions []models.Prescription
	err := h.DB.
		Joins("JOIN appointments ON appointments.id = prescriptions.appointment_id").
		Where("appointments.patient_id = ?", patientID).
		Order("prescriptions.created_at desc").
		Find(&prescriptions).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch prescriptions: "+err.Error())
		return
	}

	utils.Success(c, "Prescriptions fetched successfully", prescriptions)
}

// GetRecommendations lists recommendations written for the patient.
func (h *PatientHandler) GetRecommendations(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var recommendations []models.Recommendation
	err := h.DB.Preload("Psychiatrist").
		Where("patient_id = ?", patientID).
		Order("created_at desc").
		Find(&recommendations).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch recommendations: "+err.Error())
		return
	}

	utils.Success(c, "Recommendations fetched successfully", recommendations)
}
