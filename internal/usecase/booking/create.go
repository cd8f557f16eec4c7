package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/notify"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Actor   domain.Actor
	TutorID uint

	Subject     string
	Description string

	StartAt time.Time
	EndAt   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify notify.Sink
	audit  audit.Sink
	logger *zap.Logger

	clock func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	notifier notify.Sink,
	auditor audit.Sink,
	logger *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		logger: logger,
		clock:  timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Only students open booking requests
	// --------------------------------------------------
	if in.Actor.Role != models.RoleStudent {
		return nil, httperr.ErrBusiness("forbidden")
	}

	// --------------------------------------------------
	// Target tutor must exist and be approved
	// --------------------------------------------------
	tutor, err := uc.repo.GetUserByID(ctx, in.TutorID)
	if err != nil || tutor.Role != models.RoleTeacher {
		return nil, httperr.ErrBusiness("tutor_not_found")
	}

	profile, err := uc.repo.GetTutorProfile(ctx, in.TutorID)
	if err != nil {
		return nil, httperr.ErrBusiness("tutor_not_found")
	}
	if !profile.IsApproved {
		return nil, httperr.ErrBusiness("tutor_not_approved")
	}

	// --------------------------------------------------
	// Time window
	// --------------------------------------------------
	now := uc.clock()

	windows, err := uc.repo.ListAvailabilityForWeekday(
		ctx,
		in.TutorID,
		int(in.StartAt.Weekday()),
	)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateWindow(in.StartAt, in.EndAt, now, windows); err != nil {
		return nil, err
	}

	hours := domain.DurationHours(in.StartAt, in.EndAt)
	price := profile.HourlyRate * float64(hours)

	// --------------------------------------------------
	// Conflict check + insert in one transaction
	// --------------------------------------------------
	b := &models.Booking{
		StudentID:   in.Actor.ID,
		TutorID:     in.TutorID,
		Subject:     in.Subject,
		Description: in.Description,
		StartAt:     in.StartAt,
		EndAt:       in.EndAt,
		Price:       price,
		Status:      string(domain.InitialStatus()),
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.AssertNoActiveConflict(
			ctx,
			in.TutorID,
			in.StartAt,
			in.EndAt,
			0,
		); err != nil {
			return err
		}

		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.logger.Info("booking created",
		zap.Uint("booking_id", b.ID),
		zap.Uint("student_id", in.Actor.ID),
		zap.Uint("tutor_id", in.TutorID),
		zap.Float64("price", price),
	)

	uc.notify.Dispatch(notify.Event{
		UserID:    in.TutorID,
		Event:     notify.EventBookingRequested,
		Message:   fmt.Sprintf("New booking request for %s.", b.Subject),
		BookingID: &b.ID,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
