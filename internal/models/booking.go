package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudentID uint `gorm:"index;not null" json:"student_id"`
	Student   User `gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"student"`

	TutorID uint `gorm:"index;not null" json:"tutor_id"`
	Tutor   User `gorm:"foreignKey:TutorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"tutor"`

	Subject     string `gorm:"size:100;not null" json:"subject"`
	Description string `gorm:"size:1000" json:"description"`

	StartAt time.Time `gorm:"index" json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	Price float64 `json:"price"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	MeetingLink string `gorm:"size:500" json:"meeting_link"`
	Notes       string `gorm:"size:500" json:"notes"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
