package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
)

type DeleteBooking struct {
	repo   domain.Repository
	audit  audit.Sink
	logger *zap.Logger
}

func NewDeleteBooking(
	repo domain.Repository,
	auditor audit.Sink,
	logger *zap.Logger,
) *DeleteBooking {
	return &DeleteBooking{
		repo:   repo,
		audit:  auditor,
		logger: logger,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) error {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if !actor.MayDelete(b) {
		return httperr.ErrBusiness("forbidden")
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.logger.Info("booking deleted",
		zap.Uint("booking_id", b.ID),
		zap.Uint("actor_id", actor.ID),
		zap.String("actor_role", actor.Role),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
