package booking

import (
	"context"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
	"github.com/YuliaRizki/nailBook/internal/models"
)

type ListAppointmentsByDay struct {
	repo domain.Repository
}

func NewListAppointmentsByDay(
	repo domain.Repository,
) *ListAppointmentsByDay {
	return &ListAppointmentsByDay{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDay) Execute(
	ctx context.Context,
	userID uint,
	date string,
) ([]models.Appointment, error) {

	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}

	return uc.repo.ListAppointmentsForDay(ctx, userID, date)
}
