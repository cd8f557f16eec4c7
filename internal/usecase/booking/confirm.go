package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/notify"
)

type ConfirmBooking struct {
	repo   domain.Repository
	notify notify.Sink
	audit  audit.Sink
	logger *zap.Logger
}

func NewConfirmBooking(
	repo domain.Repository,
	notifier notify.Sink,
	auditor audit.Sink,
	logger *zap.Logger,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		logger: logger,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !actor.MayConfirm(b) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.CanConfirm(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	// State may have shifted since the request was made, so the conflict
	// check runs again against the tutor's other confirmed bookings.
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.AssertNoConfirmedConflict(
			ctx,
			b.TutorID,
			b.StartAt,
			b.EndAt,
			b.ID,
		); err != nil {
			return err
		}

		if err := domain.Confirm(b); err != nil {
			return err
		}

		return tx.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking confirmed",
		zap.Uint("booking_id", b.ID),
		zap.Uint("tutor_id", actor.ID),
	)

	uc.notify.Dispatch(notify.Event{
		UserID:    b.StudentID,
		Event:     notify.EventBookingConfirmed,
		Message:   "Your booking request has been confirmed.",
		BookingID: &b.ID,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
