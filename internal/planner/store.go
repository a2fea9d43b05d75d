package planner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DayList is the booking list for one calendar day. Mutations apply locally
// first: Submit appends a pending entry and returns before the remote write,
// Delete removes and restores a snapshot if the remote delete fails. One
// policy everywhere: a confirmed remote failure rolls the local change back.
type DayList struct {
	api    API
	notify Notifier

	mu       sync.Mutex
	date     string
	bookings []Booking

	pending sync.WaitGroup
}

func NewDayList(api API, notify Notifier, date string) *DayList {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &DayList{
		api:    api,
		notify: notify,
		date:   date,
	}
}

func (l *DayList) Date() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.date
}

// SetDate switches the watched day and refetches it.
func (l *DayList) SetDate(ctx context.Context, date string) error {
	l.mu.Lock()
	l.date = date
	l.mu.Unlock()
	return l.Refresh(ctx)
}

// Refresh replaces the local list with the server's, dropping any optimistic
// entries. This is the canonical reconciliation path; the realtime listener
// and explicit post-mutation refetches both land here.
func (l *DayList) Refresh(ctx context.Context) error {
	date := l.Date()

	bookings, err := l.api.ListDay(ctx, date)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.date != date {
		// The watched day changed while the fetch was in flight.
		return nil
	}
	l.bookings = bookings
	return nil
}

func (l *DayList) Bookings() []Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

func (l *DayList) ClientCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}

func (l *DayList) DailyRevenue() int64 {
	return DailyTotal(l.Bookings())
}

// NewBooking is the submit form. Image bytes, when present, are uploaded
// before the insert; the two calls are sequenced, never concurrent.
type NewBooking struct {
	ClientName  string
	ClientPhone string
	ServiceType string
	Date        string
	Time        string
	Notes       string
	Price       *int64
	Payment     string

	ImageName string
	ImageData []byte
}

var (
	ErrMissingFields = errors.New("client name and time are required")
)

// Submit inserts an optimistic entry and returns it immediately; the upload
// and authoritative insert run in the background. The temporary id is the
// current millisecond timestamp. On confirmed success the pending entry is
// replaced by the server row (matched by client token); on confirmed failure
// it is removed and the notifier is told.
func (l *DayList) Submit(ctx context.Context, in NewBooking) (Booking, error) {
	if in.ClientName == "" || in.Time == "" {
		l.notify.Error("Please fill in all fields!")
		return Booking{}, ErrMissingFields
	}
	if in.Date == "" {
		in.Date = l.Date()
	}

	token := uuid.NewString()
	optimistic := Booking{
		ID:            time.Now().UnixMilli(),
		ClientToken:   token,
		ClientName:    in.ClientName,
		ClientPhone:   in.ClientPhone,
		ServiceType:   in.ServiceType,
		Date:          in.Date,
		Time:          in.Time,
		Notes:         in.Notes,
		PaymentMethod: in.Payment,
		Price:         in.Price,
		Pending:       true,
	}

	l.mu.Lock()
	l.bookings = append(l.bookings, optimistic)
	l.mu.Unlock()

	l.pending.Add(1)
	go func() {
		defer l.pending.Done()
		l.settleCreate(ctx, token, in)
	}()

	return optimistic, nil
}

func (l *DayList) settleCreate(ctx context.Context, token string, in NewBooking) {
	imageURL := ""
	if len(in.ImageData) > 0 {
		url, err := l.api.UploadImage(ctx, in.ImageName, in.ImageData)
		if err != nil {
			// The booking still goes through, just without its photo.
			l.notify.Error("Could not upload the reference image.")
		} else {
			imageURL = url
		}
	}

	created, err := l.api.CreateBooking(ctx, BookingInput{
		ClientToken:    token,
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		ServiceType:    in.ServiceType,
		Date:           in.Date,
		Time:           in.Time,
		Notes:          in.Notes,
		ReferenceImage: imageURL,
		PaymentMethod:  in.Payment,
		Price:          in.Price,
	})

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.bookings = removeByToken(l.bookings, token)
		l.notify.Error("Failed to save appointment. Please try again.")
		return
	}

	for i := range l.bookings {
		if l.bookings[i].ClientToken == token {
			l.bookings[i] = *created
			return
		}
	}
	// The pending entry is gone (e.g. a refetch replaced the list); the
	// server row will be back on the next refresh.
}

// Wait blocks until every background create has settled. The CLI and tests
// use it; an interactive caller never needs to.
func (l *DayList) Wait() {
	l.pending.Wait()
}

// Delete removes the booking locally, then issues the remote delete. The
// caller is responsible for having confirmed the action with the user. If
// the remote delete fails, the exact prior list is restored.
func (l *DayList) Delete(ctx context.Context, id int64) error {
	l.mu.Lock()
	snapshot := make([]Booking, len(l.bookings))
	copy(snapshot, l.bookings)

	kept := l.bookings[:0:0]
	for _, b := range l.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	l.bookings = kept
	l.mu.Unlock()

	if err := l.api.DeleteBooking(ctx, id); err != nil {
		l.mu.Lock()
		l.bookings = snapshot
		l.mu.Unlock()
		l.notify.Error("Could not delete appointment")
		return err
	}

	l.notify.Success("Client data deleted.")
	return nil
}

func removeByToken(bookings []Booking, token string) []Booking {
	kept := bookings[:0:0]
	for _, b := range bookings {
		if b.ClientToken != token {
			kept = append(kept, b)
		}
	}
	return kept
}
