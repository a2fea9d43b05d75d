package booking

import (
	"context"
	"time"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
)

type ListBusyDates struct {
	repo domain.Repository
}

func NewListBusyDates(repo domain.Repository) *ListBusyDates {
	return &ListBusyDates{repo: repo}
}

// Execute returns the raw appointment dates inside the ±1 year window around
// today. Duplicates are left in; the client derives the distinct busy set.
func (uc *ListBusyDates) Execute(
	ctx context.Context,
	userID uint,
	today time.Time,
) ([]string, error) {

	from, to := domain.BusyWindow(today)
	return uc.repo.ListAppointmentDates(ctx, userID, from, to)
}
