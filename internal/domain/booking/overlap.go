package booking

import (
	"time"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// FindConflict returns the first booking in bs whose interval overlaps
// [start,end), skipping excludeID and anything not in an active status.
func FindConflict(bs []models.Booking, start, end time.Time, excludeID uint) *models.Booking {
	for i := range bs {
		b := &bs[i]
		if b.ID == excludeID {
			continue
		}
		if !IsActive(Status(b.Status)) {
			continue
		}
		if Overlaps(b.StartAt, b.EndAt, start, end) {
			return b
		}
	}
	return nil
}
