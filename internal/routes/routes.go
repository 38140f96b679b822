package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/medonline/consultation-scheduler/internal/audit"
	"github.com/medonline/consultation-scheduler/internal/config"
	"github.com/medonline/consultation-scheduler/internal/handlers"
	"github.com/medonline/consultation-scheduler/internal/infra/records"
	"github.com/medonline/consultation-scheduler/internal/middleware"
	"github.com/medonline/consultation-scheduler/internal/models"
	"github.com/medonline/consultation-scheduler/internal/store"
	ucAbsence "github.com/medonline/consultation-scheduler/internal/usecase/absence"
	ucAvailability "github.com/medonline/consultation-scheduler/internal/usecase/availability"
	ucBooking "github.com/medonline/consultation-scheduler/internal/usecase/booking"
	ucCalendar "github.com/medonline/consultation-scheduler/internal/usecase/calendar"
)

func RegisterRoutes(r *gin.Engine, st store.Store, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := records.NewRecordsRepository(st)

	auditLogger := audit.New(st)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucBooking.NewBookConsultation(repo, auditDispatcher)
	cancelUC := ucBooking.NewCancelConsultation(repo, auditDispatcher)
	purchaseUC := ucBooking.NewPurchaseConsultations(repo, auditDispatcher)
	historyUC := ucBooking.NewConsultationHistory(repo)

	addAbsenceUC := ucAbsence.NewAddAbsence(repo, auditDispatcher)
	deleteAbsenceUC := ucAbsence.NewDeleteAbsence(repo, auditDispatcher)

	createAvailabilityUC := ucAvailability.NewCreateAvailability(repo, auditDispatcher)
	deleteAvailabilityUC := ucAvailability.NewDeleteAvailability(repo, auditDispatcher)

	doctorWeekUC := ucCalendar.NewGetDoctorWeek(repo)
	patientWeekUC := ucCalendar.NewGetPatientWeek(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(repo, cfg)
	meHandler := handlers.NewMeHandler(repo)
	doctorsHandler := handlers.NewDoctorsHandler(repo)

	availabilityHandler := handlers.NewAvailabilityHandler(
		repo,
		createAvailabilityUC,
		deleteAvailabilityUC,
	)
	absenceHandler := handlers.NewAbsenceHandler(
		repo,
		addAbsenceUC,
		deleteAbsenceUC,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		purchaseUC,
		historyUC,
	)
	calendarHandler := handlers.NewCalendarHandler(
		doctorWeekUC,
		patientWeekUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/doctors", doctorsHandler.List)

			// ------------------------------
			// DOCTOR: OWN CALENDAR
			// ------------------------------
			doctor := secured.Group("/me")
			doctor.Use(middleware.RequireRole(models.RoleDoctor))
			{
				doctor.GET("/calendar", calendarHandler.DoctorWeek)

				doctor.GET("/availability", availabilityHandler.List)
				doctor.POST("/availability", availabilityHandler.Create)
				doctor.DELETE("/availability/:id", availabilityHandler.Delete)

				doctor.GET("/absences", absenceHandler.List)
				doctor.POST("/absences", absenceHandler.Create)
				doctor.DELETE("/absences/:id", absenceHandler.Delete)
			}

			// ------------------------------
			// PATIENT: BOOKING
			// ------------------------------
			patient := secured.Group("/")
			patient.Use(middleware.RequireRole(models.RolePatient))
			{
				patient.GET("/doctors/:id/calendar", calendarHandler.PatientWeek)

				patient.POST("/appointments", appointmentHandler.Book)
				patient.DELETE("/appointments/:id", appointmentHandler.Cancel)
				patient.GET("/appointments/upcoming", appointmentHandler.ListUpcoming)
				patient.GET("/appointments/past", appointmentHandler.ListPast)
				patient.POST("/appointments/purchase", appointmentHandler.Purchase)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.DELETE("/doctors/:id", doctorsHandler.Delete)
			}
		}
	}
}
