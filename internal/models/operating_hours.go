package models

import "time"

// OperatingHours holds one weekday of a barbershop's schedule.
// Opens/Closes use the "15:04" form; Closes is exclusive when slots
// are generated, so 09:00-19:00 at 30 min ends with the 18:30 slot.
type OperatingHours struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index:idx_shop_weekday,unique" json:"barbershop_id"`

	Weekday int `gorm:"index:idx_shop_weekday,unique" json:"weekday"`

	Opens  string `gorm:"size:5" json:"opens"`
	Closes string `gorm:"size:5" json:"closes"`
	Closed bool   `json:"closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
