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

type CompleteBooking struct {
	repo   domain.Repository
	notify notify.Sink
	audit  audit.Sink
	logger *zap.Logger

	clock func() time.Time
}

func NewCompleteBooking(
	repo domain.Repository,
	notifier notify.Sink,
	auditor audit.Sink,
	logger *zap.Logger,
) *CompleteBooking {
	return &CompleteBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		logger: logger,
		clock:  timezone.Now,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !actor.MayComplete(b) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := uc.clock()
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	// Status flip and session counter move together or not at all.
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}
		return tx.IncrementSessions(ctx, b.TutorID)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking completed",
		zap.Uint("booking_id", b.ID),
		zap.Uint("tutor_id", actor.ID),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
