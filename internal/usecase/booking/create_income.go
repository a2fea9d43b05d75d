package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
	"github.com/YuliaRizki/nailBook/internal/httperr"
	"github.com/YuliaRizki/nailBook/internal/models"
)

type CreateIncomeInput struct {
	UserID      uint
	ClientToken string
	Amount      int64
	Date        string
	Source      string
}

type CreateIncomeRecord struct {
	repo domain.Repository
}

func NewCreateIncomeRecord(repo domain.Repository) *CreateIncomeRecord {
	return &CreateIncomeRecord{repo: repo}
}

func (uc *CreateIncomeRecord) Execute(
	ctx context.Context,
	in CreateIncomeInput,
) (*models.IncomeRecord, error) {

	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	if err := domain.ValidateDate(in.Date); err != nil {
		return nil, err
	}

	if in.ClientToken != "" {
		existing, err := uc.repo.FindIncomeRecordByToken(ctx, in.UserID, in.ClientToken)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		in.ClientToken = uuid.NewString()
	}

	rec := &models.IncomeRecord{
		UserID:      in.UserID,
		ClientToken: in.ClientToken,
		Amount:      in.Amount,
		Date:        in.Date,
		Source:      in.Source,
	}

	if err := uc.repo.CreateIncomeRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}
