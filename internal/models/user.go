package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100" json:"full_name"`

	// Kept for parity with hosted auth providers. Self-hosted deployments
	// confirm at registration time since there is no mailer.
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
