package planner

import (
	"context"
	"sync"
	"time"
)

// EventStream is the realtime side of the API: one tick per remote change.
type EventStream interface {
	Events(ctx context.Context) (<-chan struct{}, error)
}

// Workspace is the whole planner screen: the day's list, the month drawer,
// the calendar's busy-date markers and the lifetime revenue card. Watch
// keeps all of it eventually consistent with remote writes.
type Workspace struct {
	api    API
	Day    *DayList
	Month  *MonthView
	notify Notifier

	mu       sync.Mutex
	busy     []string
	lifetime int64
}

func NewWorkspace(api API, notify Notifier, today time.Time) *Workspace {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Workspace{
		api:    api,
		Day:    NewDayList(api, notify, today.Format("2006-01-02")),
		Month:  NewMonthView(api, notify, today.Year(), today.Month()),
		notify: notify,
	}
}

// RefreshAll re-runs every fetch the planner screen depends on: the day's
// bookings, the busy-date markers and the full-history revenue window.
// This is what a realtime change notification triggers.
func (w *Workspace) RefreshAll(ctx context.Context) error {
	if err := w.Day.Refresh(ctx); err != nil {
		return err
	}

	dates, err := w.api.BusyDates(ctx)
	if err != nil {
		return err
	}

	// Lifetime revenue is recomputed from the complete history every time;
	// nothing is cached.
	win, err := w.api.RevenueWindow(ctx, "", "")
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.busy = DistinctBusyDates(dates)
	w.lifetime = LifetimeTotal(win.Appointments, win.Incomes)
	w.mu.Unlock()

	return nil
}

// BusyDates is the distinct, sorted set of days with at least one booking
// inside the calendar's ±1 year window.
func (w *Workspace) BusyDates() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.busy))
	copy(out, w.busy)
	return out
}

func (w *Workspace) LifetimeRevenue() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lifetime
}

// Watch subscribes to the change stream and refetches everything on every
// notification, serially. A burst of events means repeated refetches, not
// concurrent ones. It returns when ctx is cancelled or the stream ends;
// cancelling is also how a caller tears the subscription down before
// switching dates.
func (w *Workspace) Watch(ctx context.Context, stream EventStream) error {
	ch, err := stream.Events(ctx)
	if err != nil {
		return err
	}

	for range ch {
		if err := w.RefreshAll(ctx); err != nil {
			if ctx.Err() != nil {
				// Teardown, not a real failure; don't toast over it.
				break
			}
			w.notify.Error("Could not refresh after a remote change.")
		}
	}
	return ctx.Err()
}
