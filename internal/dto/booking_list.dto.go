package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Status      string    `json:"status"`
	Subject     string    `json:"subject"`
	Price       float64   `json:"price"`
	StudentName string    `json:"student_name"`
	TutorName   string    `json:"tutor_name"`
}
