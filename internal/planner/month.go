package planner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/YuliaRizki/nailBook/internal/domain/booking"
)

// MonthView is the revenue drawer: one month of appointments and manual
// income records, aggregated on demand. Recording income follows the same
// optimistic contract as bookings, rollback on confirmed failure included.
type MonthView struct {
	api    API
	notify Notifier

	mu       sync.Mutex
	year     int
	month    time.Month
	bookings []Booking
	incomes  []Income

	pending sync.WaitGroup
}

func NewMonthView(api API, notify Notifier, year int, month time.Month) *MonthView {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &MonthView{
		api:    api,
		notify: notify,
		year:   year,
		month:  month,
	}
}

func (v *MonthView) Month() (int, time.Month) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.year, v.month
}

func (v *MonthView) SetMonth(ctx context.Context, year int, month time.Month) error {
	v.mu.Lock()
	v.year = year
	v.month = month
	v.mu.Unlock()
	return v.Refresh(ctx)
}

func (v *MonthView) Refresh(ctx context.Context) error {
	year, month := v.Month()
	from, to := domain.MonthWindow(year, month)

	win, err := v.api.RevenueWindow(ctx, from, to)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.year != year || v.month != month {
		return nil
	}
	v.bookings = win.Appointments
	v.incomes = win.Incomes
	return nil
}

// Breakdown returns the per-date entries and the month total.
func (v *MonthView) Breakdown() ([]DayEntry, int64) {
	v.mu.Lock()
	bookings := make([]Booking, len(v.bookings))
	copy(bookings, v.bookings)
	incomes := make([]Income, len(v.incomes))
	copy(incomes, v.incomes)
	v.mu.Unlock()

	return MonthlySummary(bookings, incomes)
}

type NewIncome struct {
	Amount int64
	Date   string
	Source string
}

// SubmitIncome applies the record locally and returns, syncing to the server
// in the background. A confirmed failure removes the local record again.
func (v *MonthView) SubmitIncome(ctx context.Context, in NewIncome) (Income, error) {
	if in.Amount <= 0 || in.Date == "" {
		v.notify.Error("Please fill in amount and date!")
		return Income{}, ErrMissingFields
	}

	token := uuid.NewString()
	optimistic := Income{
		ID:          time.Now().UnixMilli(),
		ClientToken: token,
		Amount:      in.Amount,
		Date:        in.Date,
		Source:      in.Source,
		Pending:     true,
	}

	v.mu.Lock()
	v.incomes = append(v.incomes, optimistic)
	v.mu.Unlock()

	v.notify.Success("Income recorded!")

	v.pending.Add(1)
	go func() {
		defer v.pending.Done()
		v.settleIncome(ctx, token, in)
	}()

	return optimistic, nil
}

func (v *MonthView) settleIncome(ctx context.Context, token string, in NewIncome) {
	created, err := v.api.CreateIncome(ctx, IncomeInput{
		ClientToken: token,
		Amount:      in.Amount,
		Date:        in.Date,
		Source:      in.Source,
	})

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		kept := v.incomes[:0:0]
		for _, rec := range v.incomes {
			if rec.ClientToken != token {
				kept = append(kept, rec)
			}
		}
		v.incomes = kept
		v.notify.Error("Failed to sync to server.")
		return
	}

	for i := range v.incomes {
		if v.incomes[i].ClientToken == token {
			v.incomes[i] = *created
			return
		}
	}
}

func (v *MonthView) Wait() {
	v.pending.Wait()
}
