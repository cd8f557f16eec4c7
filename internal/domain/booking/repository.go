package booking

import (
	"context"
	"time"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

type Repository interface {
	// -------- Users / tutor profiles --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetTutorProfile(
		ctx context.Context,
		tutorID uint,
	) (*models.TutorProfile, error)

	// -------- Availability --------
	ListAvailabilityForWeekday(
		ctx context.Context,
		tutorID uint,
		weekday int,
	) ([]models.Availability, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// AssertNoActiveConflict fails with time_conflict when any pending or
	// confirmed booking for the tutor overlaps [start,end), excluding
	// excludeID. Implementations must lock the matched rows.
	AssertNoActiveConflict(
		ctx context.Context,
		tutorID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	// AssertNoConfirmedConflict is the re-check run at confirmation time,
	// against confirmed bookings only.
	AssertNoConfirmedConflict(
		ctx context.Context,
		tutorID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Derived aggregates --------
	IncrementSessions(
		ctx context.Context,
		tutorID uint,
	) error

	// -------- Reviews --------
	GetReviewByBookingID(
		ctx context.Context,
		bookingID uint,
	) (*models.Review, error)

	CreateReview(
		ctx context.Context,
		rv *models.Review,
	) error

	// RecalculateRating recomputes the tutor's rating aggregate from all
	// stored reviews and writes it to the profile.
	RecalculateRating(
		ctx context.Context,
		tutorID uint,
	) error

	// -------- Atomicity --------
	// Transaction runs fn against a repository bound to a single database
	// transaction; any error rolls the whole unit back.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
