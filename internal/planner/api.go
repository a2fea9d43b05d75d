package planner

import "context"

// BookingInput is everything the create endpoint needs. ClientToken is
// filled in by the store, not the caller.
type BookingInput struct {
	ClientToken    string `json:"client_token"`
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
	ServiceType    string `json:"service_type"`
	Date           string `json:"appointment_date"`
	Time           string `json:"appointment_time"`
	Notes          string `json:"notes"`
	ReferenceImage string `json:"reference_image"`
	PaymentMethod  string `json:"payment_method"`
	Price          *int64 `json:"price"`
}

type IncomeInput struct {
	ClientToken string `json:"client_token"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Source      string `json:"source"`
}

// API is the surface the view state needs from the backend. *Client is the
// real implementation; tests substitute a fake.
type API interface {
	ListDay(ctx context.Context, date string) ([]Booking, error)
	BusyDates(ctx context.Context) ([]string, error)
	RevenueWindow(ctx context.Context, from, to string) (*Window, error)

	CreateBooking(ctx context.Context, in BookingInput) (*Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
	CreateIncome(ctx context.Context, in IncomeInput) (*Income, error)

	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
}

// Notifier is the transient toast surface. Remote failures are reported
// here and never escalate further.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier drops everything; useful in tests and scripts.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
