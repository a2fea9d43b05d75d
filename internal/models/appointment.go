package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// ClientToken is generated by the client before the request is sent, so
	// retries and optimistic local entries always reference the same booking.
	ClientToken string `gorm:"size:36;uniqueIndex" json:"client_token"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:30" json:"client_phone"`
	ServiceType string `gorm:"size:100" json:"service_type"`

	// Calendar day ("2006-01-02") and time of day ("15:04"), stored the way
	// the planner queries them: equality on the day, ordering by the time.
	AppointmentDate string `gorm:"size:10;index;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	Notes          string `gorm:"size:500" json:"notes"`
	ReferenceImage string `gorm:"size:255" json:"reference_image"`
	PaymentMethod  string `gorm:"size:20;default:'Cash'" json:"payment_method"`

	Price *int64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceValue treats a missing price as zero for revenue math.
func (a *Appointment) PriceValue() int64 {
	if a.Price == nil {
		return 0
	}
	return *a.Price
}
