package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	Event   string `gorm:"size:50;not null" json:"event"`
	Message string `gorm:"size:500" json:"message"`

	BookingID *uint `json:"booking_id"`
	Read      bool  `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
