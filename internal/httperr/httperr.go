package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// businessStatus maps business-error codes to HTTP statuses. Codes not
// listed here are treated as validation failures (400).
var businessStatus = map[string]int{
	"forbidden": http.StatusForbidden,

	"booking_not_found":  http.StatusNotFound,
	"tutor_not_found":    http.StatusNotFound,
	"tutor_not_approved": http.StatusNotFound,
	"user_not_found":     http.StatusNotFound,
	"profile_not_found":  http.StatusNotFound,

	"time_conflict": http.StatusConflict,
	"review_exists": http.StatusConflict,
}

// businessMessage maps codes to stable human-readable messages.
var businessMessage = map[string]string{
	"forbidden":                  "You are not allowed to perform this action.",
	"booking_not_found":          "Booking not found.",
	"tutor_not_found":            "Tutor not found.",
	"tutor_not_approved":         "Tutor not found.",
	"user_not_found":             "User not found.",
	"profile_not_found":          "Tutor profile not found.",
	"time_conflict":              "The requested time slot conflicts with an existing booking.",
	"review_exists":              "This booking has already been reviewed.",
	"invalid_state":              "This action is not allowed in the booking's current state.",
	"cancellation_window_passed": "Confirmed bookings can only be cancelled at least 24 hours in advance.",
	"session_not_ended":          "The session has not ended yet.",
	"start_in_past":              "The start time must be in the future.",
	"invalid_time_range":         "The end time must be after the start time.",
	"non_whole_hour_duration":    "Bookings must last a whole number of hours.",
	"outside_availability":       "The requested time is outside the tutor's availability.",
	"invalid_meeting_link":       "The meeting link is not a valid URL.",
	"invalid_rating":             "Rating must be between 1 and 5.",
	"comment_too_long":           "Review comments are limited to 500 characters.",
	"slot_too_short":             "Availability windows must be at least 60 minutes long.",
	"invalid_time_format":        "Times must use the HH:mm format.",
	"invalid_weekday":            "Weekday must be between 0 and 6.",
	"availability_overlap":       "Availability windows on the same weekday must not overlap.",
}

// WriteBusiness renders a BusinessError with its mapped status and message;
// anything else becomes a 500.
func WriteBusiness(c *gin.Context, err error) {
	code, ok := BusinessCode(err)
	if !ok {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	status, ok := businessStatus[code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg, ok := businessMessage[code]
	if !ok {
		msg = "Request could not be processed."
	}

	Write(c, status, code, msg)
}
