package models

import "time"

// TutorProfile is one-to-one with a teacher User. RatingAvg, RatingCount
// and SessionsCount are derived aggregates: they are only ever written
// inside the same transaction as the review/completion that changes them.
type TutorProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio        string  `gorm:"size:2000" json:"bio"`
	Subjects   string  `gorm:"size:500" json:"subjects"`
	HourlyRate float64 `gorm:"not null" json:"hourly_rate"`

	IsApproved      bool   `gorm:"default:false" json:"is_approved"`
	RejectionReason string `gorm:"size:500" json:"rejection_reason,omitempty"`

	RatingAvg     float64 `gorm:"default:0" json:"rating_avg"`
	RatingCount   int     `gorm:"default:0" json:"rating_count"`
	SessionsCount int     `gorm:"default:0" json:"sessions_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
