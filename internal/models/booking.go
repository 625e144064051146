package models

import "time"

// Booking is one reserved slot. The composite unique index is what makes
// two writers racing for the same barbershop/slot lose deterministically:
// the second insert fails with a unique violation instead of double-booking.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint       `gorm:"uniqueIndex:uniq_shop_slot" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Minute precision, stored in UTC; the shop timezone resolves display.
	ScheduledAt time.Time `gorm:"uniqueIndex:uniq_shop_slot;not null" json:"scheduled_at"`

	// Present when a checkout preference was created for this booking.
	PaymentURL string `gorm:"size:500" json:"payment_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
