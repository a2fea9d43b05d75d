package booking

import (
	"context"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
	"github.com/YuliaRizki/nailBook/internal/httperr"
	"github.com/YuliaRizki/nailBook/internal/models"
)

type ListClientHistory struct {
	repo domain.Repository
}

func NewListClientHistory(repo domain.Repository) *ListClientHistory {
	return &ListClientHistory{repo: repo}
}

func (uc *ListClientHistory) Execute(
	ctx context.Context,
	userID uint,
	clientName string,
) ([]models.Appointment, error) {

	if clientName == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}

	return uc.repo.ListAppointmentsByClient(ctx, userID, clientName)
}
