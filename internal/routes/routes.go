package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"depresscare-server/internal/config"
	"depresscare-server/internal/handlers"
	"depresscare-server/internal/middleware"
	"depresscare-server/internal/models"
	"depresscare-server/internal/notify"
	"depresscare-server/internal/reports"
	"depresscare-server/internal/services/appointment"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, appointments *appointment.Service, notifier *notify.Dispatcher) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db, appointments)
	psychiatristHandler := handlers.NewPsychiatristHandler(db, appointments)
	formHandler := handlers.NewFormHandler(db)
	postHandler := handlers.NewPostHandler(db)
	internalHandler := handlers.NewInternalHandler(db, notifier)
	adminHandler := handlers.NewAdminHandler(db, reports.New(db))

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// The questionnaire itself is public so prospective patients can see it
		public.GET("/forms/questions", formHandler.GetQuestions)

		// Community posts are readable without an account
		public.GET("/posts", postHandler.GetPosts)
		public.GET("/posts/:id", postHandler.GetPostByID)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/me", authHandler.GetMe)
		}

		// Community post mutations require an account; edit/delete
		// authorization (author or admin) is enforced in the handler
		postRoutes := private.Group("/posts")
		{
			postRoutes.POST("", postHandler.CreatePost)
			postRoutes.PUT("/:id", postHandler.UpdatePost)
			postRoutes.DELETE("/:id", postHandler.DeletePost)
		}

		// Patient routes
		patientRoutes := private.Group("/patients")
		patientRoutes.Use(middleware.RoleAuthMiddleware(models.RolePatient))
		{
			patientRoutes.GET("/psychiatrists", patientHandler.SearchPsychiatrists)
			patientRoutes.POST("/appointments", patientHandler.BookAppointment)
			patientRoutes.GET("/appointments", patientHandler.GetAppointmentHistory)
			patientRoutes.DELETE("/appointments/:id", patientHandler.CancelAppointment)
			patientRoutes.POST("/assessments", patientHandler.SubmitAssessment)
			patientRoutes.GET("/prescriptions", patientHandler.GetPrescriptions)
			patientRoutes.GET("/recommendations", patientHandler.GetRecommendations)
		}

		// Submitted assessment forms; ownership checks live in the handler
		// because psychiatrists read their patients' forms through here too
		formRoutes := private.Group("/forms")
		{
			formRoutes.GET("/history", middleware.RoleAuthMiddleware(models.RolePatient), formHandler.GetFormHistory)
			formRoutes.GET("/:id", middleware.RoleAuthMiddleware(models.RolePatient, models.RolePsychiatrist, models.RoleAdmin), formHandler.GetFormDetails)
			formRoutes.POST("/questions", middleware.RoleAuthMiddleware(models.RoleAdmin), formHandler.AddQuestion)
		}

		// Psychiatrist routes
		psychiatristRoutes := private.Group("/psychiatrists")
		psychiatristRoutes.Use(middleware.RoleAuthMiddleware(models.RolePsychiatrist))
		{
			psychiatristRoutes.GET("/profile", psychiatristHandler.GetProfile)
			psychiatristRoutes.PUT("/profile", psychiatristHandler.UpdateProfile)
			psychiatristRoutes.GET("/patients", psychiatristHandler.GetPatients)
			psychiatristRoutes.GET("/patients/:id", psychiatristHandler.GetPatientDetails)
			psychiatristRoutes.GET("/patients/:id/assessments", psychiatristHandler.GetPatientAssessments)
			psychiatristRoutes.GET("/appointments", psychiatristHandler.GetAppointments)
			psychiatristRoutes.PATCH("/appointments/:id/status", psychiatristHandler.UpdateAppointmentStatus)
			psychiatristRoutes.POST("/recommendations", psychiatristHandler.CreateRecommendation)
			psychiatristRoutes.POST("/prescriptions", psychiatristHandler.UploadPrescription)
		}

		// Internal management routes
		internalRoutes := private.Group("/internal")
		internalRoutes.Use(middleware.RoleAuthMiddleware(models.RoleInternal, models.RoleAdmin))
		{
			internalRoutes.POST("/jobs", internalHandler.CreateJobPosting)
			internalRoutes.GET("/jobs", internalHandler.GetJobPostings)
			internalRoutes.POST("/payments", internalHandler.RecordPayment)
			internalRoutes.POST("/salaries", internalHandler.ProcessSalary)
			internalRoutes.PATCH("/salaries/:id/status", internalHandler.UpdateSalaryStatus)
			internalRoutes.GET("/reports/financial", internalHandler.GetFinancialReports)
		}

		// Admin routes
		adminRoutes := private.Group("/admin")
		adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/users", adminHandler.GetUsers)
			adminRoutes.PATCH("/users/:id/role", adminHandler.UpdateUserRole)
			adminRoutes.POST("/psychiatrists", adminHandler.EnrollPsychiatrist)
			adminRoutes.GET("/reports/:type", adminHandler.GenerateReport)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
