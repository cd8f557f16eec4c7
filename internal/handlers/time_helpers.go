package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/middleware"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/timezone"
)

// All request clock values are interpreted in the platform timezone.

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

// actorFromContext rebuilds the explicit actor the domain layer expects
// from the claims the auth middleware stored.
func actorFromContext(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.MustGet(middleware.ContextUserID).(uint),
		Role: c.MustGet(middleware.ContextUserRole).(string),
	}
}
