package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"depresscare-server/internal/mailer"
	"depresscare-server/internal/middleware"
	"depresscare-server/internal/models"
	"depresscare-server/internal/notify"
	"depresscare-server/internal/utils"
)

// InternalHandler handles the internal-management surface: job postings,
// patient payments, psychiatrist salaries and financial reports.
type InternalHandler struct {
	DB       *gorm.DB
	Notifier *notify.Dispatcher
}

// NewInternalHandler creates a new InternalHandler.
func NewInternalHandler(db *gorm.DB, notifier *notify.Dispatcher) *InternalHandler {
	return &InternalHandler{DB: db, Notifier: notifier}
}

// CreateJobPostingRequest represents the request body for a job posting.
type CreateJobPostingRequest struct {
	Title        string `json:"title" binding:"required,max=100"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements" binding:"required"`
	PictureURL   string `json:"pictureUrl"`
}

// CreateJobPosting publishes a new vacancy.
func (h *InternalHandler) CreateJobPosting(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateJobPostingRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	job := models.JobPosting{
		PostedBy:     userID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		PictureURL:   req.PictureURL,
	}
	if err := h.DB.Create(&job).Error; err != nil {
		utils.InternalServerError(c, "Failed to create job posting: "+err.Error())
		return
	}

	utils.Created(c, "Job posting created successfully", job)
}

// GetJobPostings lists all vacancies, newest first.
func (h *InternalHandler) GetJobPostings(c *gin.Context) {
	var jobs []models.JobPosting
	if err := h.DB.Order("created_at desc").Find(&jobs).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch job postings: "+err.Error())
		return
	}

	utils.Success(c, "Job postings fetched successfully", jobs)
}

// RecordPaymentRequest represents the request body for recording a payment.
type RecordPaymentRequest struct {
	PatientID     string  `json:"patientId" binding:"required,uuid"`
	AppointmentID string  `json:"appointmentId" binding:"required,uuid"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}

// RecordPayment records a patient payment. Patient and appointment existence
// are verified inside the same transaction as the insert; a confirmation
// mail goes out best-effort after commit.
func (h *InternalHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	payment := models.PatientPayment{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		PaymentDate:   time.Now(),
		PaymentStatus: models.PaymentPaid,
	}

	var patient models.User
	var appt models.Appointment
	var missing string
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&patient, "id = ?", req.PatientID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				missing = "Patient not found"
			}
			return err
		}
		if err := tx.First(&appt, "id = ?", req.AppointmentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				missing = "Appointment not found"
			}
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		if missing != "" {
			utils.NotFound(c, missing)
		} else {
			utils.InternalServerError(c, "Failed to record payment: "+err.Error())
		}
		return
	}

	h.Notifier.PaymentRecorded(mailer.PaymentDetails{
		UserEmail:       patient.Email,
		UserName:        patient.FullName,
		Amount:          payment.Amount,
		AppointmentTime: appt.ScheduledTime.Format("Jan 2, 2006 15:04"),
		PaymentDate:     payment.PaymentDate.Format("Jan 2, 2006"),
	})

	utils.Created(c, "Payment recorded successfully", payment)
}

// ProcessSalaryRequest represents the request body for processing a salary.
type ProcessSalaryRequest struct {
	PsychiatristID string  `json:"psychiatristId" binding:"required,uuid"`
	Month          string  `json:"month" binding:"required"`
	Year           int     `json:"year" binding:"required,min=2000"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
}

// ProcessSalary creates a pending salary record for a psychiatrist and sends
// a best-effort notice.
func (h *InternalHandler) ProcessSalary(c *gin.Context) {
	var req ProcessSalaryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var psychiatrist models.User
	err := h.DB.Where("id = ? AND role = ?", req.PsychiatristID, models.RolePsychiatrist).
		First(&psychiatrist).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Psychiatrist not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	salary := models.PsychiatristSalary{
		PsychiatristID: req.PsychiatristID,
		Month:          req.Month,
		Year:           req.Year,
		Amount:         req.Amount,
		PaymentStatus:  models.SalaryPending,
		ProcessedAt:    time.Now(),
	}
	if err := h.DB.Create(&salary).Error; err != nil {
		utils.InternalServerError(c, "Failed to process salary: "+err.Error())
		return
	}

	h.Notifier.SalaryProcessed(mailer.SalaryDetails{
		UserEmail: psychiatrist.Email,
		UserName:  psychiatrist.FullName,
		Amount:    salary.Amount,
		Month:     salary.Month,
		Year:      salary.Year,
		Status:    string(salary.PaymentStatus),
	})

	utils.Created(c, "Salary processed successfully", salary)
}

// UpdateSalaryStatusRequest represents the request body for a salary status update.
type UpdateSalaryStatusRequest struct {
	PaymentStatus models.SalaryStatus `json:"paymentStatus" binding:"required,oneof=Paid Pending"`
}

// UpdateSalaryStatus flips a salary record's payment status. Marking it Paid
// sends a best-effort notice to the psychiatrist.
func (h *InternalHandler) UpdateSalaryStatus(c *gin.Context) {
	var req UpdateSalaryStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var salary models.PsychiatristSalary
	if err := h.DB.First(&salary, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Salary record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	previous := salary.PaymentStatus
	salary.PaymentStatus = req.PaymentStatus
	if err := h.DB.Save(&salary).Error; err != nil {
		utils.InternalServerError(c, "Failed to update salary status: "+err.Error())
		return
	}

	if salary.PaymentStatus == models.SalaryPaid && previous != models.SalaryPaid {
		var psychiatrist models.User
		if err := h.DB.First(&psychiatrist, "id = ?", salary.PsychiatristID).Error; err == nil {
			h.Notifier.SalaryPaid(mailer.SalaryDetails{
				UserEmail: psychiatrist.Email,
				UserName:  psychiatrist.FullName,
				Amount:    salary.Amount,
				Month:     salary.Month,
				Year:      salary.Year,
				Status:    string(salary.PaymentStatus),
			})
		}
	}

	utils.Success(c, "Salary status updated successfully", salary)
}

// GetFinancialReports returns payments and salaries, optionally filtered by
// month and year.
func (h *InternalHandler) GetFinancialReports(c *gin.Context) {
	month := c.Query("month")
	yearStr := c.Query("year")

	salaryQuery := h.DB.Order("processed_at desc")
	paymentQuery := h.DB.Order("payment_date desc")

	if month != "" {
		salaryQuery = salaryQuery.Where("month = ?", month)
	}
	if yearStr != "" {
		salaryQuery = salaryQuery.Where("year = ?", yearStr)
		paymentQuery = paymentQuery.Where("YEAR(payment_date) = ?", yearStr)
	}

	var payments []models.PatientPayment
	if err := paymentQuery.Find(&payments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch payments: "+err.Error())
		return
	}

	var salaries []models.PsychiatristSalary
	if err := salaryQuery.Find(&salaries).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch salaries: "+err.Error())
		return
	}

	utils.Success(c, "Financial report fetched successfully", gin.H{
		"payments": payments,
		"salaries": salaries,
	})
}
