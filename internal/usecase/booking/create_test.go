package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/YuliaRizki/nailBook/internal/events"
	"github.com/YuliaRizki/nailBook/internal/httperr"
	"github.com/YuliaRizki/nailBook/internal/models"
)

// fakeRepo keeps appointments and income records in memory, scoped per user
// the way the real store is.
type fakeRepo struct {
	mu           sync.Mutex
	nextID       uint
	appointments []models.Appointment
	incomes      []models.IncomeRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) FindAppointmentByToken(_ context.Context, userID uint, token string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		ap := r.appointments[i]
		if ap.UserID == userID && ap.ClientToken == token {
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetAppointmentForUser(_ context.Context, appointmentID, userID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		ap := r.appointments[i]
		if ap.ID == appointmentID && ap.UserID == userID {
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, appointmentID, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.appointments[:0:0]
	for _, ap := range r.appointments {
		if ap.ID != appointmentID || ap.UserID != userID {
			kept = append(kept, ap)
		}
	}
	r.appointments = kept
	return nil
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, userID uint, date string) ([]models.Appointment, error) {
	return r.ListAppointmentsInRange(context.Background(), userID, date, date)
}

func (r *fakeRepo) ListAppointmentsInRange(_ context.Context, userID uint, from, to string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID != userID {
			continue
		}
		if (from == "" || ap.AppointmentDate >= from) && (to == "" || ap.AppointmentDate <= to) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsByClient(_ context.Context, userID uint, clientName string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == userID && ap.ClientName == clientName {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentDates(_ context.Context, userID uint, from, to string) ([]string, error) {
	aps, err := r.ListAppointmentsInRange(context.Background(), userID, from, to)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, ap := range aps {
		out = append(out, ap.AppointmentDate)
	}
	return out, nil
}

func (r *fakeRepo) CreateIncomeRecord(_ context.Context, rec *models.IncomeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	r.incomes = append(r.incomes, *rec)
	return nil
}

func (r *fakeRepo) FindIncomeRecordByToken(_ context.Context, userID uint, token string) (*models.IncomeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.incomes {
		rec := r.incomes[i]
		if rec.UserID == userID && rec.ClientToken == token {
			return &rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListIncomeRecordsInRange(_ context.Context, userID uint, from, to string) ([]models.IncomeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.IncomeRecord
	for _, rec := range r.incomes {
		if rec.UserID != userID {
			continue
		}
		if (from == "" || rec.Date >= from) && (to == "" || rec.Date <= to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// chanPublisher hands every published event to the test.
type chanPublisher struct {
	ch chan events.Event
}

func newChanPublisher() *chanPublisher {
	return &chanPublisher{ch: make(chan events.Event, 10)}
}

func (p *chanPublisher) Publish(_ context.Context, ev events.Event) error {
	p.ch <- ev
	return nil
}

func (p *chanPublisher) next(t *testing.T) events.Event {
	t.Helper()
	select {
	case ev := <-p.ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
		return events.Event{}
	}
}

func price(v int64) *int64 { return &v }

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		UserID:      1,
		ClientToken: "3f1c0f3e-1111-2222-3333-444455556666",
		ClientName:  "Selena",
		Date:        "2024-03-05",
		Time:        "10:00",
		Price:       price(50000),
	}
}

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	pub := newChanPublisher()
	uc := NewCreateAppointment(repo, events.NewDispatcher(pub))

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ap.ID == 0 {
		t.Error("expected a persisted id")
	}
	if ap.PaymentMethod != "Cash" {
		t.Errorf("payment method = %q, want default Cash", ap.PaymentMethod)
	}

	ev := pub.next(t)
	if ev.Action != events.ActionInsert || ev.Entity != events.EntityAppointments {
		t.Errorf("event = %+v, want insert on appointments", ev)
	}
	if ev.EntityID != ap.ID || ev.UserID != 1 {
		t.Errorf("event ids = %+v, want entity %d user 1", ev, ap.ID)
	}
}

func TestCreateAppointmentDedupesOnToken(t *testing.T) {
	repo := newFakeRepo()
	pub := newChanPublisher()
	uc := NewCreateAppointment(repo, events.NewDispatcher(pub))

	in := validInput()
	first, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	second, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("retry created a new row: %d vs %d", second.ID, first.ID)
	}
	if len(repo.appointments) != 1 {
		t.Errorf("expected 1 stored appointment, got %d", len(repo.appointments))
	}
}

func TestCreateAppointmentWithoutTokenNeverCollides(t *testing.T) {
	repo := newFakeRepo()
	pub := newChanPublisher()
	uc := NewCreateAppointment(repo, events.NewDispatcher(pub))

	in := validInput()
	in.ClientToken = ""
	first, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	second, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}

	// client_token is unique in the schema; tokenless creates must each get
	// their own rather than two empty strings.
	if first.ClientToken == "" || second.ClientToken == "" {
		t.Error("tokenless create should be assigned a token")
	}
	if first.ClientToken == second.ClientToken {
		t.Errorf("both rows carry token %q", first.ClientToken)
	}
	if len(repo.appointments) != 2 {
		t.Errorf("expected 2 rows, got %d", len(repo.appointments))
	}
}

func TestCreateIncomeRecordWithoutToken(t *testing.T) {
	uc := NewCreateIncomeRecord(newFakeRepo())

	mk := func() *models.IncomeRecord {
		rec, err := uc.Execute(context.Background(), CreateIncomeInput{
			UserID: 1,
			Amount: 20000,
			Date:   "2024-03-05",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		return rec
	}

	first, second := mk(), mk()
	if first.ClientToken == "" || first.ClientToken == second.ClientToken {
		t.Errorf("tokens %q and %q, want distinct non-empty", first.ClientToken, second.ClientToken)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, events.NewDispatcher(newChanPublisher()))

	cases := []struct {
		name   string
		mutate func(*CreateAppointmentInput)
		code   string
	}{
		{"missing name", func(in *CreateAppointmentInput) { in.ClientName = "" }, "missing_client_name"},
		{"bad date", func(in *CreateAppointmentInput) { in.Date = "05-03-2024" }, "invalid_date"},
		{"bad time", func(in *CreateAppointmentInput) { in.Time = "10am" }, "invalid_time"},
		{"bad payment", func(in *CreateAppointmentInput) { in.PaymentMethod = "Barter" }, "invalid_payment_method"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Errorf("err = %v, want business code %s", err, tc.code)
			}
		})
	}

	if len(repo.appointments) != 0 {
		t.Errorf("validation failures must not persist, stored %d", len(repo.appointments))
	}
}

func TestDeleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	pub := newChanPublisher()
	create := NewCreateAppointment(repo, events.NewDispatcher(pub))
	del := NewDeleteAppointment(repo, events.NewDispatcher(pub))

	ap, err := create.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	pub.next(t) // drain the insert event

	if err := del.Execute(context.Background(), 1, ap.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Error("appointment should be gone")
	}

	ev := pub.next(t)
	if ev.Action != events.ActionDelete || ev.EntityID != ap.ID {
		t.Errorf("event = %+v, want delete of %d", ev, ap.ID)
	}
}

func TestDeleteAppointmentScopedToOwner(t *testing.T) {
	repo := newFakeRepo()
	pub := newChanPublisher()
	create := NewCreateAppointment(repo, events.NewDispatcher(pub))
	del := NewDeleteAppointment(repo, events.NewDispatcher(pub))

	ap, err := create.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = del.Execute(context.Background(), 2, ap.ID)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("err = %v, want appointment_not_found", err)
	}
	if len(repo.appointments) != 1 {
		t.Error("another user's delete must not remove the row")
	}
}

func TestCreateIncomeRecord(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateIncomeRecord(repo)

	rec, err := uc.Execute(context.Background(), CreateIncomeInput{
		UserID:      1,
		ClientToken: "7a1c0f3e-1111-2222-3333-444455556666",
		Amount:      20000,
		Date:        "2024-03-05",
		Source:      "product sale",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if rec.ID == 0 {
		t.Error("expected a persisted id")
	}

	// Same token again: same row back.
	again, err := uc.Execute(context.Background(), CreateIncomeInput{
		UserID:      1,
		ClientToken: rec.ClientToken,
		Amount:      20000,
		Date:        "2024-03-05",
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if again.ID != rec.ID || len(repo.incomes) != 1 {
		t.Error("retry with the same token must not create a duplicate")
	}
}

func TestCreateIncomeRecordValidation(t *testing.T) {
	uc := NewCreateIncomeRecord(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateIncomeInput{UserID: 1, Amount: 0, Date: "2024-03-05"})
	if !httperr.IsBusiness(err, "invalid_amount") {
		t.Errorf("err = %v, want invalid_amount", err)
	}

	_, err = uc.Execute(context.Background(), CreateIncomeInput{UserID: 1, Amount: 100, Date: "bad"})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("err = %v, want invalid_date", err)
	}
}

func TestListAppointmentsByDay(t *testing.T) {
	repo := newFakeRepo()
	pub := newChanPublisher()
	create := NewCreateAppointment(repo, events.NewDispatcher(pub))
	list := NewListAppointmentsByDay(repo)

	for _, date := range []string{"2024-03-05", "2024-03-05", "2024-03-06"} {
		in := validInput()
		in.ClientToken = ""
		in.Date = date
		if _, err := create.Execute(context.Background(), in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	aps, err := list.Execute(context.Background(), 1, "2024-03-05")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(aps) != 2 {
		t.Errorf("expected 2 appointments on the day, got %d", len(aps))
	}

	if _, err := list.Execute(context.Background(), 1, "not-a-date"); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("err = %v, want invalid_date", err)
	}
}

func TestListBusyDatesWindow(t *testing.T) {
	repo := newFakeRepo()
	pub := newChanPublisher()
	create := NewCreateAppointment(repo, events.NewDispatcher(pub))
	busy := NewListBusyDates(repo)

	today := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	for _, date := range []string{
		"2024-03-05",
		"2024-03-05",
		"2023-03-06", // just inside the year-back bound
		"2021-01-01", // outside
		"2025-06-01", // outside
	} {
		in := validInput()
		in.ClientToken = ""
		in.Date = date
		if _, err := create.Execute(context.Background(), in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	dates, err := busy.Execute(context.Background(), 1, today)
	if err != nil {
		t.Fatalf("busy: %v", err)
	}
	if len(dates) != 3 {
		t.Errorf("expected 3 raw dates (duplicates kept), got %v", dates)
	}
}
