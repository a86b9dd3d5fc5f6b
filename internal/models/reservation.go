package models

import "time"

// Reservations are never deleted; cancellation is a status change.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HallID uint `gorm:"index" json:"hall_id"`
	Hall   Hall `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Frozen at creation; later hall price changes do not touch it.
	TotalPrice float64 `json:"total_price"`

	Notes string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
