package booking

import (
	"time"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// MinCancelHours is the minimum whole-hour lead time a student must leave
// when cancelling a confirmed booking.
const MinCancelHours = 24

func Confirm(b *models.Booking) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	return nil
}

func Reject(b *models.Booking, reason string) error {
	if err := CanReject(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusRejected)
	if reason != "" {
		b.Notes = reason
	}
	return nil
}

// Cancel moves a pending or confirmed booking to cancelled. Pending
// bookings are always cancellable; confirmed bookings only while the
// whole-hour lead time is still at least MinCancelHours.
func Cancel(b *models.Booking, now time.Time, note string) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	if Status(b.Status) == StatusConfirmed {
		if int(b.StartAt.Sub(now).Hours()) < MinCancelHours {
			return httperr.ErrBusiness("cancellation_window_passed")
		}
	}

	b.Status = string(StatusCancelled)
	if note != "" {
		b.Notes = note
	}
	return nil
}

// Complete marks a confirmed booking as completed once its end time has
// passed. The caller must persist the matching session-counter increment
// in the same transaction.
func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	if !b.EndAt.Before(now) {
		return httperr.ErrBusiness("session_not_ended")
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func SetMeetingLink(b *models.Booking, url string) error {
	if Status(b.Status) != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}

	b.MeetingLink = url
	return nil
}
