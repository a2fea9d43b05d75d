package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/YuliaRizki/nailBook/internal/httperr"
	"github.com/YuliaRizki/nailBook/internal/httpresp"
	"github.com/YuliaRizki/nailBook/internal/middleware"
	"github.com/YuliaRizki/nailBook/internal/timezone"
	ucBooking "github.com/YuliaRizki/nailBook/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC  *ucBooking.CreateAppointment
	deleteUC  *ucBooking.DeleteAppointment
	listUC    *ucBooking.ListAppointmentsByDay
	busyUC    *ucBooking.ListBusyDates
	historyUC *ucBooking.ListClientHistory
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	deleteUC *ucBooking.DeleteAppointment,
	listUC *ucBooking.ListAppointmentsByDay,
	busyUC *ucBooking.ListBusyDates,
	historyUC *ucBooking.ListClientHistory,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:  createUC,
		deleteUC:  deleteUC,
		listUC:    listUC,
		busyUC:    busyUC,
		historyUC: historyUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientToken    string `json:"client_token"`
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone"`
	ServiceType    string `json:"service_type"`
	Date           string `json:"appointment_date" binding:"required"`
	Time           string `json:"appointment_time" binding:"required"`
	Notes          string `json:"notes"`
	ReferenceImage string `json:"reference_image"`
	PaymentMethod  string `json:"payment_method"`
	Price          *int64 `json:"price"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, date and time are required.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		UserID:         userID,
		ClientToken:    req.ClientToken,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ServiceType:    req.ServiceType,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
		ReferenceImage: req.ReferenceImage,
		PaymentMethod:  req.PaymentMethod,
		Price:          req.Price,
	})
	if err != nil {
		writeBookingError(c, err, "failed_to_create_appointment", "Could not save the appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (day view)
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.DefaultQuery("date", timezone.Today())

	aps, err := h.listUC.Execute(c.Request.Context(), userID, date)
	if err != nil {
		writeBookingError(c, err, "failed_to_list_appointments", "Could not load the day.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CLIENT HISTORY
// ======================================================

func (h *AppointmentHandler) ClientHistory(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	client := c.Query("client")
	aps, err := h.historyUC.Execute(c.Request.Context(), userID, client)
	if err != nil {
		writeBookingError(c, err, "failed_to_list_history", "Could not load client history.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// BUSY DATES
// ======================================================

func (h *AppointmentHandler) BusyDates(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	dates, err := h.busyUC.Execute(c.Request.Context(), userID, timezone.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_list_busy_dates", "Could not load calendar markers.")
		return
	}

	httpresp.List(c, dates)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Could not delete the appointment.")
		return
	}

	c.Status(204)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error, internalCode, internalMsg string) {
	for _, code := range []string{
		"missing_client_name",
		"invalid_date",
		"invalid_time",
		"invalid_payment_method",
		"invalid_amount",
	} {
		if httperr.IsBusiness(err, code) {
			httperr.BadRequest(c, code, "Invalid booking data.")
			return
		}
	}
	httperr.Internal(c, internalCode, internalMsg)
}
