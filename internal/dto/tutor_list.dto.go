package dto

type TutorListDTO struct {
	UserID        uint    `json:"user_id"`
	Name          string  `json:"name"`
	Bio           string  `json:"bio"`
	Subjects      string  `json:"subjects"`
	HourlyRate    float64 `json:"hourly_rate"`
	RatingAvg     float64 `json:"rating_avg"`
	RatingCount   int     `json:"rating_count"`
	SessionsCount int     `json:"sessions_count"`
}
