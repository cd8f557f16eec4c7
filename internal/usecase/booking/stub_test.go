package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/notify"
)

// stubRepo is an in-memory domain.Repository. Conflict checks reuse the
// domain overlap scan instead of SQL.
type stubRepo struct {
	users         map[uint]*models.User
	profiles      map[uint]*models.TutorProfile
	availability  []models.Availability
	bookings      map[uint]*models.Booking
	reviews       map[uint]*models.Review
	nextBookingID uint
	nextReviewID  uint

	sessionsIncremented []uint
	ratingRecalculated  []uint
	deleted             []uint
	txCount             int

	// createErr simulates a write refused by the database, e.g. the slot
	// exclusion constraint firing at commit.
	createErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		users:         map[uint]*models.User{},
		profiles:      map[uint]*models.TutorProfile{},
		bookings:      map[uint]*models.Booking{},
		reviews:       map[uint]*models.Review{},
		nextBookingID: 1,
		nextReviewID:  1,
	}
}

func (r *stubRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *stubRepo) GetTutorProfile(_ context.Context, tutorID uint) (*models.TutorProfile, error) {
	p, ok := r.profiles[tutorID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *stubRepo) ListAvailabilityForWeekday(_ context.Context, tutorID uint, weekday int) ([]models.Availability, error) {
	var out []models.Availability
	for _, a := range r.availability {
		if a.TutorID == tutorID && a.Weekday == weekday {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	b.ID = r.nextBookingID
	r.nextBookingID++
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *stubRepo) AssertNoActiveConflict(_ context.Context, tutorID uint, start, end time.Time, excludeID uint) error {
	for _, b := range r.bookings {
		if b.TutorID != tutorID || b.ID == excludeID {
			continue
		}
		if !domain.IsActive(domain.Status(b.Status)) {
			continue
		}
		if domain.Overlaps(b.StartAt, b.EndAt, start, end) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (r *stubRepo) AssertNoConfirmedConflict(_ context.Context, tutorID uint, start, end time.Time, excludeID uint) error {
	for _, b := range r.bookings {
		if b.TutorID != tutorID || b.ID == excludeID {
			continue
		}
		if domain.Status(b.Status) != domain.StatusConfirmed {
			continue
		}
		if domain.Overlaps(b.StartAt, b.EndAt, start, end) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (r *stubRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *b
	return &cp, nil
}

func (r *stubRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *stubRepo) DeleteBooking(_ context.Context, id uint) error {
	delete(r.bookings, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubRepo) IncrementSessions(_ context.Context, tutorID uint) error {
	r.sessionsIncremented = append(r.sessionsIncremented, tutorID)
	if p, ok := r.profiles[tutorID]; ok {
		p.SessionsCount++
	}
	return nil
}

func (r *stubRepo) GetReviewByBookingID(_ context.Context, bookingID uint) (*models.Review, error) {
	for _, rv := range r.reviews {
		if rv.BookingID == bookingID {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubRepo) CreateReview(_ context.Context, rv *models.Review) error {
	rv.ID = r.nextReviewID
	r.nextReviewID++
	cp := *rv
	r.reviews[rv.ID] = &cp
	return nil
}

func (r *stubRepo) RecalculateRating(_ context.Context, tutorID uint) error {
	r.ratingRecalculated = append(r.ratingRecalculated, tutorID)
	p, ok := r.profiles[tutorID]
	if !ok {
		return nil
	}
	var sum, count int
	for _, rv := range r.reviews {
		if rv.TutorID == tutorID {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		p.RatingAvg, p.RatingCount = 0, 0
		return nil
	}
	p.RatingAvg = float64(sum) / float64(count)
	p.RatingCount = count
	return nil
}

func (r *stubRepo) Transaction(_ context.Context, fn func(domain.Repository) error) error {
	r.txCount++
	return fn(r)
}

var _ domain.Repository = (*stubRepo)(nil)

// stubNotify and stubAudit record dispatched events for assertions.
type stubNotify struct {
	events []notify.Event
}

func (s *stubNotify) Dispatch(ev notify.Event) {
	s.events = append(s.events, ev)
}

type stubAudit struct {
	events []audit.Event
}

func (s *stubAudit) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
