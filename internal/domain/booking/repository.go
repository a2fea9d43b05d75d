package booking

import (
	"context"

	"github.com/YuliaRizki/nailBook/internal/models"
)

type Repository interface {
	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindAppointmentByToken(
		ctx context.Context,
		userID uint,
		token string,
	) (*models.Appointment, error)

	GetAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		userID uint,
		date string,
	) ([]models.Appointment, error)

	// ListAppointmentsInRange returns appointments whose date falls in
	// [from, to] inclusive. Empty bounds mean unbounded (lifetime fetch).
	ListAppointmentsInRange(
		ctx context.Context,
		userID uint,
		from string,
		to string,
	) ([]models.Appointment, error)

	ListAppointmentsByClient(
		ctx context.Context,
		userID uint,
		clientName string,
	) ([]models.Appointment, error)

	// ListAppointmentDates returns the date column only, duplicates
	// included; callers derive the distinct busy set.
	ListAppointmentDates(
		ctx context.Context,
		userID uint,
		from string,
		to string,
	) ([]string, error)

	// -------- Income records --------
	CreateIncomeRecord(
		ctx context.Context,
		rec *models.IncomeRecord,
	) error

	FindIncomeRecordByToken(
		ctx context.Context,
		userID uint,
		token string,
	) (*models.IncomeRecord, error)

	ListIncomeRecordsInRange(
		ctx context.Context,
		userID uint,
		from string,
		to string,
	) ([]models.IncomeRecord, error)
}
