package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/handlers"
	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/notify"
	"clinic-app-server/internal/repository"
	"clinic-app-server/internal/service"
)

// SetupRoutes configures the application routes. The allowed roles for each
// route are declared right here at registration, so the route tree and the
// access rules live in one place.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) *notify.Dispatcher {
	// Repositories
	appointmentRepo := repository.NewAppointmentRepository(db, log)
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db, log)
	notificationRepo := repository.NewNotificationRepository(db)

	// Notification sink: async, fire-and-forget
	dispatcher := notify.NewDispatcher(notificationRepo, log, cfg.NotificationBuffer)

	// Services and handlers
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo, dispatcher, log)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	doctorHandler := handlers.NewDoctorHandler(appointmentService)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)

	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		// Patient-facing appointment routes
		appointmentRoutes := private.Group("/appointments")
		appointmentRoutes.Use(middleware.RoleAuthMiddleware(models.RolePatient))
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetPatientAppointments)
			appointmentRoutes.GET("/count", appointmentHandler.GetAppointmentCount)
			appointmentRoutes.GET("/upcoming", appointmentHandler.GetUpcomingAppointment)
			appointmentRoutes.GET("/doctors", appointmentHandler.GetDoctors)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
		}

		// Doctor-facing appointment routes
		doctorRoutes := private.Group("/doctor")
		doctorRoutes.Use(middleware.RoleAuthMiddleware(models.RoleDoctor))
		{
			doctorRoutes.GET("/appointments", doctorHandler.GetDoctorAppointments)
			doctorRoutes.PUT("/appointments/:id/status", doctorHandler.UpdateAppointmentStatus)
		}

		// Notifications belong to whoever they were addressed to
		notificationRoutes := private.Group("/notifications")
		{
			notificationRoutes.GET("", notificationHandler.GetNotifications)
			notificationRoutes.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	return dispatcher
}
