package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
	"github.com/YuliaRizki/nailBook/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) FindAppointmentByToken(
	ctx context.Context,
	userID uint,
	token string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_token = ?", userID, token).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForUser(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Delete(&models.Appointment{}).Error
}

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	userID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND appointment_date = ?", userID, date).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsInRange(
	ctx context.Context,
	userID uint,
	from string,
	to string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != "" {
		q = q.Where("appointment_date >= ?", from)
	}
	if to != "" {
		q = q.Where("appointment_date <= ?", to)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsByClient(
	ctx context.Context,
	userID uint,
	clientName string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_name = ?", userID, clientName).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentDates(
	ctx context.Context,
	userID uint,
	from string,
	to string,
) ([]string, error) {

	var dates []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"user_id = ? AND appointment_date >= ? AND appointment_date <= ?",
			userID, from, to,
		).
		Pluck("appointment_date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

// --------------------------------------------------
// Income records
// --------------------------------------------------

func (r *BookingGormRepository) CreateIncomeRecord(
	ctx context.Context,
	rec *models.IncomeRecord,
) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *BookingGormRepository) FindIncomeRecordByToken(
	ctx context.Context,
	userID uint,
	token string,
) (*models.IncomeRecord, error) {

	var rec models.IncomeRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_token = ?", userID, token).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *BookingGormRepository) ListIncomeRecordsInRange(
	ctx context.Context,
	userID uint,
	from string,
	to string,
) ([]models.IncomeRecord, error) {

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var recs []models.IncomeRecord
	if err := q.
		Order("date ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
