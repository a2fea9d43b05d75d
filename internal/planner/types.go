// Package planner is the client side of the salon planner: an HTTP client
// for the nailBook API plus the local view state that makes mutations feel
// instant. Creates and deletes apply to the local lists before the remote
// write settles; a confirmed remote failure rolls the local change back and
// a refetch is always the canonical way to reconcile.
package planner

type Booking struct {
	ID             int64  `json:"id"`
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

	// Pending marks an optimistic entry the server has not confirmed yet.
	// Its ID is a local millisecond timestamp, not a server id.
	Pending bool `json:"-"`
}

func (b Booking) PriceValue() int64 {
	if b.Price == nil {
		return 0
	}
	return *b.Price
}

type Income struct {
	ID          int64  `json:"id"`
	ClientToken string `json:"client_token"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Source      string `json:"source"`

	Pending bool `json:"-"`
}

// Window is one date range of raw records, as served by /me/revenue.
type Window struct {
	From         string    `json:"from"`
	To           string    `json:"to"`
	Appointments []Booking `json:"appointments"`
	Incomes      []Income  `json:"income_records"`
}

type Profile struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	DisplayName string `json:"display_name"`
}
