package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:255" json:"comment"`

	UserID uint `gorm:"index:idx_reviews_user_hall,unique" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	HallID uint `gorm:"index:idx_reviews_user_hall,unique" json:"hall_id"`
	Hall   Hall `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
