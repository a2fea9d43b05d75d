package booking

import (
	"context"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
	"github.com/YuliaRizki/nailBook/internal/events"
	"github.com/YuliaRizki/nailBook/internal/httperr"
)

type DeleteAppointment struct {
	repo   domain.Repository
	events *events.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	events *events.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:   repo,
		events: events,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, userID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID, userID); err != nil {
		return err
	}

	uc.events.Dispatch(events.Event{
		Action:   events.ActionDelete,
		Entity:   events.EntityAppointments,
		EntityID: ap.ID,
		UserID:   userID,
	})

	return nil
}
