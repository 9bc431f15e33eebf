package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velvetnails/salon-scheduler/internal/audit"
	"github.com/velvetnails/salon-scheduler/internal/cache"
	"github.com/velvetnails/salon-scheduler/internal/config"
	"github.com/velvetnails/salon-scheduler/internal/handlers"
	infraRepo "github.com/velvetnails/salon-scheduler/internal/infra/repository"
	"github.com/velvetnails/salon-scheduler/internal/middleware"
	"github.com/velvetnails/salon-scheduler/internal/models"
	"github.com/velvetnails/salon-scheduler/internal/notification"
	ucAppointment "github.com/velvetnails/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	sender := notification.NewResendSender(cfg.ResendAPIKey, cfg.ResendFrom)
	notificationDispatcher := notification.NewDispatcher(sender, db, cfg.BookingLink)

	serviceCache := cache.New(cfg.RedisAddr)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		notificationDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	listMyAppointmentsUC := ucAppointment.NewListMyAppointments(appointmentRepo)
	listBlockedSlotsUC := ucAppointment.NewListBlockedSlots(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, serviceCache)
	notificationHandler := handlers.NewNotificationHandler(notificationDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
		listMyAppointmentsUC,
		listBlockedSlotsUC,
	)

	// ======================================================
	// AUTH
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// ======================================================
	// AUTHENTICATED API
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		adminOnly := middleware.RequireRoles(models.RoleAdmin)
		staffOrAdmin := middleware.RequireRoles(models.RoleStaff, models.RoleAdmin)

		// ------------------------------
		// SERVICES
		// ------------------------------
		secured.GET("/services", serviceHandler.List)
		secured.POST("/services", adminOnly, serviceHandler.Create)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		secured.GET("/clients", adminOnly, clientHandler.List)
		secured.GET("/clients/me", clientHandler.GetMe)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.POST("/appointments", appointmentHandler.Create)
		secured.GET("/appointments", adminOnly, appointmentHandler.List)
		secured.GET("/appointments/my", appointmentHandler.ListMine)
		secured.GET("/appointments/blocked", appointmentHandler.BlockedSlots)
		secured.PATCH("/appointments/:id", appointmentHandler.Patch)
		secured.DELETE("/appointments/:id", appointmentHandler.Delete)
		secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
		secured.POST("/appointments/:id/complete", staffOrAdmin, appointmentHandler.Complete)

		// ------------------------------
		// NOTIFICATIONS
		// ------------------------------
		secured.POST("/notifications/send", staffOrAdmin, notificationHandler.Send)
	}
}
