package models

import "time"

type Hall struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string  `gorm:"size:100;index;not null" json:"name"`
	Description  string  `gorm:"size:255" json:"description"`
	Category     string  `gorm:"size:50" json:"category"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"price_per_hour"`
	Location     string  `gorm:"size:100" json:"location"`
	PhotoURL     string  `gorm:"size:255" json:"photo_url"`

	ProviderID uint `json:"provider_id"`
	Provider   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
