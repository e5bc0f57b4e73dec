package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultant-scheduler/internal/audit"
	"github.com/BruksfildServices01/consultant-scheduler/internal/config"
	domain "github.com/BruksfildServices01/consultant-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultant-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/consultant-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/consultant-scheduler/internal/middleware"
	"github.com/BruksfildServices01/consultant-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/consultant-scheduler/internal/usecase/appointment"
)

// RegisterRoutes wires the API. The caller owns the dispatcher and must
// close it on shutdown.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	operator := timezone.NewOperator(cfg.OperatorTimezone)
	normalizer := domain.NewTimeNormalizer(timezone.NewResolver(), operator)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	scheduleUC := ucAppointment.NewScheduleAppointment(
		appointmentRepo,
		normalizer,
		auditDispatcher,
	)

	checkOverlapsUC := ucAppointment.NewCheckOverlaps(
		appointmentRepo,
		normalizer,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
		normalizer,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
		normalizer,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		normalizer,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		scheduleUC,
		checkOverlapsUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		availabilityUC,
	)

	meHandler := handlers.NewMeHandler(db, operator)
	directoryHandler := handlers.NewDirectoryHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(db))

	// ======================================================
	// API (JSON)
	// ======================================================
	secured := r.Group("/api")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)

		secured.GET("/customers", directoryHandler.ListCustomers)
		secured.GET("/consultants", directoryHandler.ListConsultants)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.POST("/appointments", appointmentHandler.Create)
		secured.PUT("/appointments/:id", appointmentHandler.Update)
		secured.POST("/appointments/overlaps", appointmentHandler.Overlaps)

		secured.GET("/consultants/:id/appointments", appointmentHandler.ListByDate)
		secured.GET("/consultants/:id/appointments/month", appointmentHandler.ListByMonth)
		secured.GET("/consultants/:id/availability", appointmentHandler.Availability)

		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
