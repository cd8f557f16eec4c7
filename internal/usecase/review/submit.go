package review

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type SubmitReviewInput struct {
	Actor     domain.Actor
	BookingID uint
	Rating    int
	Comment   string
}

// ======================================================
// USE CASE
// ======================================================

// SubmitReview creates the one allowed review for a completed booking and
// recomputes the tutor's rating aggregate in the same transaction.
type SubmitReview struct {
	repo   domain.Repository
	notify notify.Sink
	audit  audit.Sink
	logger *zap.Logger
}

func NewSubmitReview(
	repo domain.Repository,
	notifier notify.Sink,
	auditor audit.Sink,
	logger *zap.Logger,
) *SubmitReview {
	return &SubmitReview{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitReview) Execute(
	ctx context.Context,
	in SubmitReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	if len(in.Comment) > 500 {
		return nil, httperr.ErrBusiness("comment_too_long")
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !in.Actor.MayReview(b) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if domain.Status(b.Status) != domain.StatusCompleted {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if _, err := uc.repo.GetReviewByBookingID(ctx, b.ID); err == nil {
		return nil, httperr.ErrBusiness("review_exists")
	}

	rv := &models.Review{
		BookingID: b.ID,
		StudentID: b.StudentID,
		TutorID:   b.TutorID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}

	// The review row and the rating aggregate must never diverge.
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateReview(ctx, rv); err != nil {
			return err
		}
		return tx.RecalculateRating(ctx, b.TutorID)
	})
	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("review_exists")
		}
		return nil, err
	}

	uc.logger.Info("review submitted",
		zap.Uint("booking_id", b.ID),
		zap.Uint("tutor_id", b.TutorID),
		zap.Int("rating", in.Rating),
	)

	uc.notify.Dispatch(notify.Event{
		UserID:    b.TutorID,
		Event:     notify.EventReviewSubmitted,
		Message:   fmt.Sprintf("You received a new %d-star review.", in.Rating),
		BookingID: &b.ID,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.ID,
		Action:   "review_submitted",
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}
