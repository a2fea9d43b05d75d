package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/YuliaRizki/nailBook/internal/config"
	"github.com/YuliaRizki/nailBook/internal/events"
	"github.com/YuliaRizki/nailBook/internal/handlers"
	infraRepo "github.com/YuliaRizki/nailBook/internal/infra/repository"
	"github.com/YuliaRizki/nailBook/internal/middleware"
	"github.com/YuliaRizki/nailBook/internal/storage"
	ucBooking "github.com/YuliaRizki/nailBook/internal/usecase/booking"
	ucRevenue "github.com/YuliaRizki/nailBook/internal/usecase/revenue"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	broker := events.NewRedisBroker(cfg)
	dispatcher := events.NewDispatcher(broker)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, dispatcher)
	deleteAppointmentUC := ucBooking.NewDeleteAppointment(bookingRepo, dispatcher)
	listByDayUC := ucBooking.NewListAppointmentsByDay(bookingRepo)
	busyDatesUC := ucBooking.NewListBusyDates(bookingRepo)
	clientHistoryUC := ucBooking.NewListClientHistory(bookingRepo)
	createIncomeUC := ucBooking.NewCreateIncomeRecord(bookingRepo)
	windowUC := ucRevenue.NewFetchWindow(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		deleteAppointmentUC,
		listByDayUC,
		busyDatesUC,
		clientHistoryUC,
	)
	incomeHandler := handlers.NewIncomeHandler(createIncomeUC)
	revenueHandler := handlers.NewRevenueHandler(windowUC)
	uploadHandler := handlers.NewUploadHandler(uploader)
	eventsHandler := handlers.NewEventsHandler(broker)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)
			secured.GET("/me/appointments/history", appointmentHandler.ClientHistory)
			secured.GET("/me/busy-dates", appointmentHandler.BusyDates)

			secured.POST("/me/income-records", incomeHandler.Create)

			secured.GET("/me/revenue", revenueHandler.Window)

			secured.POST("/me/uploads", uploadHandler.Create)

			secured.GET("/me/events", eventsHandler.Stream)
		}
	}
}
