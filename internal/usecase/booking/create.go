package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
	"github.com/YuliaRizki/nailBook/internal/events"
	"github.com/YuliaRizki/nailBook/internal/httperr"
	"github.com/YuliaRizki/nailBook/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	// ClientToken makes the create idempotent: a retry with the same token
	// returns the already-created row instead of a duplicate.
	ClientToken string

	ClientName  string
	ClientPhone string
	ServiceType string

	Date string
	Time string

	Notes          string
	ReferenceImage string
	PaymentMethod  string
	Price          *int64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	events *events.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	events *events.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		events: events,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.ClientName == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}
	if err := domain.ValidateDate(in.Date); err != nil {
		return nil, err
	}
	if err := domain.ValidateTime(in.Time); err != nil {
		return nil, err
	}
	if err := domain.ValidatePaymentMethod(in.PaymentMethod); err != nil {
		return nil, err
	}

	if in.ClientToken != "" {
		existing, err := uc.repo.FindAppointmentByToken(ctx, in.UserID, in.ClientToken)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		// The column is unique, so a tokenless create still gets one; it
		// just can't be deduped on retry.
		in.ClientToken = uuid.NewString()
	}

	method := in.PaymentMethod
	if method == "" {
		method = string(domain.DefaultPaymentMethod())
	}

	ap := &models.Appointment{
		UserID:          in.UserID,
		ClientToken:     in.ClientToken,
		ClientName:      in.ClientName,
		ClientPhone:     in.ClientPhone,
		ServiceType:     in.ServiceType,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Notes:           in.Notes,
		ReferenceImage:  in.ReferenceImage,
		PaymentMethod:   method,
		Price:           in.Price,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:   events.ActionInsert,
		Entity:   events.EntityAppointments,
		EntityID: ap.ID,
		UserID:   in.UserID,
	})

	return ap, nil
}
