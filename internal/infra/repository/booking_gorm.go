package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Users / tutor profiles
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetTutorProfile(
	ctx context.Context,
	tutorID uint,
) (*models.TutorProfile, error) {

	var profile models.TutorProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", tutorID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListAvailabilityForWeekday(
	ctx context.Context,
	tutorID uint,
	weekday int,
) ([]models.Availability, error) {

	var windows []models.Availability
	if err := r.db.WithContext(ctx).
		Where("tutor_id = ? AND weekday = ?", tutorID, weekday).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) AssertNoActiveConflict(
	ctx context.Context,
	tutorID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {
	return r.assertNoConflict(
		ctx,
		tutorID,
		[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		start,
		end,
		excludeID,
	)
}

func (r *BookingGormRepository) AssertNoConfirmedConflict(
	ctx context.Context,
	tutorID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {
	return r.assertNoConflict(
		ctx,
		tutorID,
		[]string{string(domain.StatusConfirmed)},
		start,
		end,
		excludeID,
	)
}

// assertNoConflict gives the common case a clean business error before the
// write. Racing writers that both pass it are refused at commit by the
// bookings_tutor_slot_excl exclusion constraint.
func (r *BookingGormRepository) assertNoConflict(
	ctx context.Context,
	tutorID uint,
	statuses []string,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"tutor_id = ? AND id <> ? AND status IN ? AND start_at < ? AND end_at > ?",
			tutorID,
			excludeID,
			statuses,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// --------------------------------------------------
// Derived aggregates
// --------------------------------------------------

func (r *BookingGormRepository) IncrementSessions(
	ctx context.Context,
	tutorID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.TutorProfile{}).
		Where("user_id = ?", tutorID).
		UpdateColumn("sessions_count", gorm.Expr("sessions_count + 1")).
		Error
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *BookingGormRepository) GetReviewByBookingID(
	ctx context.Context,
	bookingID uint,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *BookingGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *BookingGormRepository) RecalculateRating(
	ctx context.Context,
	tutorID uint,
) error {

	type aggregate struct {
		Avg   float64
		Count int64
	}

	var agg aggregate
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("tutor_id = ?", tutorID).
		Scan(&agg).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&models.TutorProfile{}).
		Where("user_id = ?", tutorID).
		Updates(map[string]any{
			"rating_avg":   agg.Avg,
			"rating_count": agg.Count,
		}).Error
}

// --------------------------------------------------
// Atomicity
// --------------------------------------------------

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
