package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/notify"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	notify notify.Sink
	audit  audit.Sink
	logger *zap.Logger

	clock func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	notifier notify.Sink,
	auditor audit.Sink,
	logger *zap.Logger,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		logger: logger,
		clock:  timezone.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	note string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !actor.MayCancel(b) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := uc.clock()
	if err := domain.Cancel(b, now, note); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.logger.Info("booking cancelled",
		zap.Uint("booking_id", b.ID),
		zap.Uint("student_id", actor.ID),
	)

	uc.notify.Dispatch(notify.Event{
		UserID:    b.TutorID,
		Event:     notify.EventBookingCancelled,
		Message:   "A booking has been cancelled by the student.",
		BookingID: &b.ID,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
