package models

import "time"

// IncomeRecord is income logged by hand, outside any appointment. There is
// no update or delete path for these.
type IncomeRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientToken string `gorm:"size:36;uniqueIndex" json:"client_token"`

	Amount int64  `gorm:"not null" json:"amount"`
	Date   string `gorm:"size:10;index;not null" json:"date"`
	Source string `gorm:"size:100" json:"source"`

	CreatedAt time.Time `json:"created_at"`
}
