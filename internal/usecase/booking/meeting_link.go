package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/validators"
)

type SetMeetingLink struct {
	repo   domain.Repository
	audit  audit.Sink
	logger *zap.Logger
}

func NewSetMeetingLink(
	repo domain.Repository,
	auditor audit.Sink,
	logger *zap.Logger,
) *SetMeetingLink {
	return &SetMeetingLink{
		repo:   repo,
		audit:  auditor,
		logger: logger,
	}
}

func (uc *SetMeetingLink) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	url string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !actor.MaySetMeetingLink(b) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if !validators.IsValidURL(url) {
		return nil, httperr.ErrBusiness("invalid_meeting_link")
	}

	if err := domain.SetMeetingLink(b, url); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.logger.Info("meeting link set",
		zap.Uint("booking_id", b.ID),
		zap.Uint("tutor_id", actor.ID),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "meeting_link_set",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
