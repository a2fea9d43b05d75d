package planner

import (
	"context"
	"testing"
	"time"
)

func TestSubmitIncomeAppearsImmediately(t *testing.T) {
	api := newFakeAPI()
	month := NewMonthView(api, nil, 2024, time.March)

	rec, err := month.SubmitIncome(context.Background(), NewIncome{
		Amount: 20000,
		Date:   "2024-03-05",
		Source: "product sale",
	})
	if err != nil {
		t.Fatalf("SubmitIncome: %v", err)
	}
	if !rec.Pending {
		t.Error("optimistic income should be pending")
	}

	entries, total := month.Breakdown()
	if total != 20000 {
		t.Errorf("month total = %d, want 20000", total)
	}
	if len(entries) != 1 || !entries[0].ExtraIncome {
		t.Errorf("expected one extra-income entry, got %+v", entries)
	}

	month.Wait()
	if _, total := month.Breakdown(); total != 20000 {
		t.Errorf("month total after settle = %d, want 20000", total)
	}
}

func TestSubmitIncomeRollsBackOnFailure(t *testing.T) {
	api := newFakeAPI()
	api.failCreate = true
	notify := &recordingNotifier{}
	month := NewMonthView(api, notify, 2024, time.March)

	if _, err := month.SubmitIncome(context.Background(), NewIncome{
		Amount: 20000,
		Date:   "2024-03-05",
	}); err != nil {
		t.Fatalf("SubmitIncome: %v", err)
	}
	month.Wait()

	if _, total := month.Breakdown(); total != 0 {
		t.Errorf("failed income should be rolled back, total = %d", total)
	}
	if notify.errorCount() == 0 {
		t.Error("expected a failure notification")
	}
}

func TestSubmitIncomeValidates(t *testing.T) {
	api := newFakeAPI()
	month := NewMonthView(api, nil, 2024, time.March)

	if _, err := month.SubmitIncome(context.Background(), NewIncome{Date: "2024-03-05"}); err == nil {
		t.Error("expected error for zero amount")
	}
	if _, err := month.SubmitIncome(context.Background(), NewIncome{Amount: 100}); err == nil {
		t.Error("expected error for missing date")
	}
	month.Wait()
	if len(api.calls) != 0 {
		t.Errorf("no network call should happen on validation failure, saw %v", api.calls)
	}
}

func TestMonthRefreshScenario(t *testing.T) {
	api := newFakeAPI()
	for _, p := range []int64{30000, 70000} {
		v := p
		api.server = append(api.server, Booking{
			ID:    api.nextID,
			Date:  "2024-03-05",
			Price: &v,
		})
		api.nextID++
	}

	month := NewMonthView(api, nil, 2024, time.March)
	if err := month.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if _, err := month.SubmitIncome(context.Background(), NewIncome{
		Amount: 20000,
		Date:   "2024-03-05",
	}); err != nil {
		t.Fatalf("SubmitIncome: %v", err)
	}
	month.Wait()

	entries, total := month.Breakdown()
	if total != 120000 {
		t.Errorf("month total = %d, want 120000", total)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single day entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Total != 120000 || e.Clients != 2 || !e.ExtraIncome {
		t.Errorf("entry = %+v, want total 120000, 2 clients, extra income", e)
	}
}

func TestSetMonthSwitchesWindow(t *testing.T) {
	api := newFakeAPI()
	v := int64(30000)
	api.server = append(api.server, Booking{ID: 1, Date: "2024-03-05", Price: &v})

	month := NewMonthView(api, nil, 2024, time.March)
	if err := month.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if _, total := month.Breakdown(); total != 30000 {
		t.Fatalf("march total = %d, want 30000", total)
	}

	if err := month.SetMonth(context.Background(), 2024, time.April); err != nil {
		t.Fatalf("SetMonth: %v", err)
	}
	if _, total := month.Breakdown(); total != 0 {
		t.Errorf("april total = %d, want 0", total)
	}
}
