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

type RejectBooking struct {
	repo   domain.Repository
	notify notify.Sink
	audit  audit.Sink
	logger *zap.Logger
}

func NewRejectBooking(
	repo domain.Repository,
	notifier notify.Sink,
	auditor audit.Sink,
	logger *zap.Logger,
) *RejectBooking {
	return &RejectBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		logger: logger,
	}
}

func (uc *RejectBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !actor.MayReject(b) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.Reject(b, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.logger.Info("booking rejected",
		zap.Uint("booking_id", b.ID),
		zap.Uint("tutor_id", actor.ID),
	)

	uc.notify.Dispatch(notify.Event{
		UserID:    b.StudentID,
		Event:     notify.EventBookingRejected,
		Message:   "Your booking request has been declined.",
		BookingID: &b.ID,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_rejected",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
