package revenue

import (
	"context"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
	"github.com/YuliaRizki/nailBook/internal/models"
)

// Window is the raw material for client-side revenue math: every appointment
// and income record whose date falls inside [From, To]. Empty bounds fetch
// the complete history (the lifetime total is recomputed from scratch on
// every display, no caching).
type Window struct {
	From         string                `json:"from"`
	To           string                `json:"to"`
	Appointments []models.Appointment  `json:"appointments"`
	Incomes      []models.IncomeRecord `json:"income_records"`
}

type FetchWindow struct {
	repo domain.Repository
}

func NewFetchWindow(repo domain.Repository) *FetchWindow {
	return &FetchWindow{repo: repo}
}

func (uc *FetchWindow) Execute(
	ctx context.Context,
	userID uint,
	from string,
	to string,
) (*Window, error) {

	if from != "" {
		if err := domain.ValidateDate(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if err := domain.ValidateDate(to); err != nil {
			return nil, err
		}
	}

	aps, err := uc.repo.ListAppointmentsInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	incomes, err := uc.repo.ListIncomeRecordsInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return &Window{
		From:         from,
		To:           to,
		Appointments: aps,
		Incomes:      incomes,
	}, nil
}
