package models

import "time"

type Barbershop struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Address  string `gorm:"size:255" json:"address"`
	Phone    string `gorm:"size:20" json:"phone"`
	ImageURL string `gorm:"size:500" json:"image_url"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Minutes between candidate slots within the operating window.
	SlotIntervalMin int `gorm:"default:30" json:"slot_interval_min"`

	Services []Service `json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
