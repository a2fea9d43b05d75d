package revenue

import (
	"context"
	"testing"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
	"github.com/YuliaRizki/nailBook/internal/httperr"
	"github.com/YuliaRizki/nailBook/internal/models"
)

// stubRepo overrides just the two range queries; the embedded interface
// covers the methods this usecase never touches.
type stubRepo struct {
	domain.Repository
	aps  []models.Appointment
	recs []models.IncomeRecord
}

func (s *stubRepo) ListAppointmentsInRange(_ context.Context, userID uint, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.aps {
		if ap.UserID != userID {
			continue
		}
		if (from == "" || ap.AppointmentDate >= from) && (to == "" || ap.AppointmentDate <= to) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (s *stubRepo) ListIncomeRecordsInRange(_ context.Context, userID uint, from, to string) ([]models.IncomeRecord, error) {
	var out []models.IncomeRecord
	for _, rec := range s.recs {
		if rec.UserID != userID {
			continue
		}
		if (from == "" || rec.Date >= from) && (to == "" || rec.Date <= to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestFetchWindowBoundsInclusive(t *testing.T) {
	repo := &stubRepo{
		aps: []models.Appointment{
			{ID: 1, UserID: 1, AppointmentDate: "2024-03-01"},
			{ID: 2, UserID: 1, AppointmentDate: "2024-03-31"},
			{ID: 3, UserID: 1, AppointmentDate: "2024-04-01"},
			{ID: 4, UserID: 2, AppointmentDate: "2024-03-10"},
		},
		recs: []models.IncomeRecord{
			{ID: 5, UserID: 1, Date: "2024-03-15", Amount: 5000},
			{ID: 6, UserID: 1, Date: "2024-02-29", Amount: 9000},
		},
	}
	uc := NewFetchWindow(repo)

	win, err := uc.Execute(context.Background(), 1, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(win.Appointments) != 2 {
		t.Errorf("appointments = %d, want 2 (bounds inclusive, other users excluded)", len(win.Appointments))
	}
	if len(win.Incomes) != 1 {
		t.Errorf("incomes = %d, want 1", len(win.Incomes))
	}
}

func TestFetchWindowEmptyBoundsMeanLifetime(t *testing.T) {
	repo := &stubRepo{
		aps: []models.Appointment{
			{ID: 1, UserID: 1, AppointmentDate: "2019-01-01"},
			{ID: 2, UserID: 1, AppointmentDate: "2024-03-05"},
		},
		recs: []models.IncomeRecord{
			{ID: 3, UserID: 1, Date: "2021-06-01", Amount: 5000},
		},
	}
	uc := NewFetchWindow(repo)

	win, err := uc.Execute(context.Background(), 1, "", "")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(win.Appointments) != 2 || len(win.Incomes) != 1 {
		t.Errorf("lifetime fetch incomplete: %d appointments, %d incomes", len(win.Appointments), len(win.Incomes))
	}
}

func TestFetchWindowRejectsMalformedBounds(t *testing.T) {
	uc := NewFetchWindow(&stubRepo{})

	_, err := uc.Execute(context.Background(), 1, "03/01/2024", "")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("err = %v, want invalid_date", err)
	}
	_, err = uc.Execute(context.Background(), 1, "", "2024-13-99")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("err = %v, want invalid_date", err)
	}
}
