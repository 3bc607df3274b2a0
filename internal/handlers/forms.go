package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"depresscare-server/internal/middleware"
	"depresscare-server/internal/models"
	"depresscare-server/internal/utils"
)

// FormHandler handles the self-assessment questionnaire surface.
type FormHandler struct {
	DB *gorm.DB
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(db *gorm.DB) *FormHandler {
	return &FormHandler{DB: db}
}

// GetQuestions lists all questionnaire questions. Public.
func (h *FormHandler) GetQuestions(c *gin.Context) {
	var questions []models.FormQuestion
	if err := h.DB.Find(&questions).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch questions: "+err.Error())
		return
	}

	utils.Success(c, "Questions fetched successfully", questions)
}

// AddQuestionRequest represents the request body for adding a question.
type AddQuestionRequest struct {
	QuestionText string           `json:"questionText" binding:"required"`
	ScoreType    models.ScoreType `json:"scoreType" binding:"required,oneof=Likert Binary Scale"`
}

// AddQuestion adds a question to the questionnaire.
func (h *FormHandler) AddQuestion(c *gin.Context) {
	var req AddQuestionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	question := models.FormQuestion{
		QuestionText: req.QuestionText,
		ScoreType:    req.ScoreType,
	}
	if err := h.DB.Create(&question).Error; err != nil {
		utils.InternalServerError(c, "Failed to add question: "+err.Error())
		return
	}

	utils.Created(c, "Question added successfully", question)
}

// GetFormHistory lists the authenticated patient's submitted forms with
// responses.
func (h *FormHandler) GetFormHistory(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var forms []models.DepressionForm
	err := h.DB.Preload("Responses.Question").
		Where("patient_id = ?", patientID).
		Order("filled_at desc").
		Find(&forms).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch form history: "+err.Error())
		return
	}

	utils.Success(c, "Form history fetched successfully", forms)
}

// GetFormDetails returns one submitted form. Patients can only read their
// own forms.
func (h *FormHandler) GetFormDetails(c *gin.Context) {
	var form models.DepressionForm
	err := h.DB.Preload("Responses.Question").
		First(&form, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Form not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole == models.RolePatient && form.PatientID != userID {
		utils.Forbidden(c, "Unauthorized access")
		return
	}

	utils.Success(c, "Form fetched successfully", form)
}
