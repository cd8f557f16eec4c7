package models

import "time"

// Availability is a recurring weekly window during which a tutor accepts
// bookings. Times are stored as "HH:mm" clock strings.
type Availability struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	TutorID uint `gorm:"index;not null" json:"tutor_id"`

	Weekday   int    `json:"weekday"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
