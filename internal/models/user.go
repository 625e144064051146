package models

import "time"

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	AvatarURL string `gorm:"size:500" json:"avatar_url"`

	// OAuth identity for customers; empty for password accounts.
	Provider   string `gorm:"size:20" json:"-"`
	ProviderID string `gorm:"size:100;index" json:"-"`

	// Password accounts are barbershop owners.
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:20;default:'customer'" json:"role"`
	BarbershopID *uint  `json:"barbershop_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
