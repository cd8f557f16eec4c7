package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/domain/booking"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/httperr"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/notify"
)

func seedBooking(repo *stubRepo, status domain.Status, start time.Time) *models.Booking {
	b := &models.Booking{
		StudentID: 10,
		TutorID:   20,
		Subject:   "Physics",
		StartAt:   start,
		EndAt:     start.Add(time.Hour),
		Status:    string(status),
	}
	_ = repo.CreateBooking(context.Background(), b)
	return b
}

var (
	studentActor = domain.Actor{ID: 10, Role: models.RoleStudent}
	tutorActor   = domain.Actor{ID: 20, Role: models.RoleTeacher}
	adminActor   = domain.Actor{ID: 99, Role: models.RoleAdmin}
)

// ------- Confirm -------

func TestConfirmBooking(t *testing.T) {
	repo := newStubRepo()
	b := seedBooking(repo, domain.StatusPending, monday(16, 0))
	notifier := &stubNotify{}

	uc := NewConfirmBooking(repo, notifier, &stubAudit{}, nopLogger())

	out, err := uc.Execute(context.Background(), tutorActor, b.ID)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", out.Status)
	}

	stored := repo.bookings[b.ID]
	if stored.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected persisted status confirmed, got %s", stored.Status)
	}

	if len(notifier.events) != 1 || notifier.events[0].Event != notify.EventBookingConfirmed {
		t.Fatalf("expected booking_confirmed notification, got %+v", notifier.events)
	}
	if notifier.events[0].UserID != 10 {
		t.Fatalf("notification must target the student, got %d", notifier.events[0].UserID)
	}
}

func TestConfirmBookingGuards(t *testing.T) {
	repo := newStubRepo()
	b := seedBooking(repo, domain.StatusPending, monday(16, 0))
	uc := NewConfirmBooking(repo, &stubNotify{}, &stubAudit{}, nopLogger())

	if _, err := uc.Execute(context.Background(), studentActor, b.ID); !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("student confirming: expected forbidden, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), adminActor, b.ID); !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("admin confirming: expected forbidden, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), tutorActor, 999); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("missing booking: expected booking_not_found, got %v", err)
	}
}

func TestConfirmBookingRechecksConfirmedConflicts(t *testing.T) {
	repo := newStubRepo()

	// Another confirmed booking already occupies the slot.
	other := seedBooking(repo, domain.StatusConfirmed, monday(16, 0))
	other.StudentID = 11
	_ = repo.UpdateBooking(context.Background(), other)

	b := seedBooking(repo, domain.StatusPending, monday(16, 0))

	uc := NewConfirmBooking(repo, &stubNotify{}, &stubAudit{}, nopLogger())

	_, err := uc.Execute(context.Background(), tutorActor, b.ID)
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
	if repo.bookings[b.ID].Status != string(domain.StatusPending) {
		t.Fatal("failed confirmation must leave the booking pending")
	}
}

// ------- Reject -------

func TestRejectBooking(t *testing.T) {
	repo := newStubRepo()
	b := seedBooking(repo, domain.StatusPending, monday(16, 0))
	notifier := &stubNotify{}

	uc := NewRejectBooking(repo, notifier, &stubAudit{}, nopLogger())

	out, err := uc.Execute(context.Background(), tutorActor, b.ID, "slot no longer free")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Status != string(domain.StatusRejected) {
		t.Fatalf("expected rejected, got %s", out.Status)
	}
	if out.Notes != "slot no longer free" {
		t.Fatalf("expected reason stored, got %q", out.Notes)
	}

	if len(notifier.events) != 1 || notifier.events[0].Event != notify.EventBookingRejected {
		t.Fatalf("expected booking_rejected notification, got %+v", notifier.events)
	}

	// Rejected is terminal.
	if _, err := uc.Execute(context.Background(), tutorActor, b.ID, ""); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("second reject: expected invalid_state, got %v", err)
	}
}

// ------- Cancel -------

func TestCancelBookingWindow(t *testing.T) {
	repo := newStubRepo()
	start := monday(16, 0)
	b := seedBooking(repo, domain.StatusConfirmed, start)
	notifier := &stubNotify{}

	uc := NewCancelBooking(repo, notifier, &stubAudit{}, nopLogger())

	// 10h of lead time on a confirmed booking: refused.
	uc.clock = fixedClock(start.Add(-10 * time.Hour))
	_, err := uc.Execute(context.Background(), studentActor, b.ID, "")
	if !httperr.IsBusiness(err, "cancellation_window_passed") {
		t.Fatalf("expected cancellation_window_passed, got %v", err)
	}

	// 30h of lead time: allowed.
	uc.clock = fixedClock(start.Add(-30 * time.Hour))
	out, err := uc.Execute(context.Background(), studentActor, b.ID, "can't make it")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected cancelled, got %s", out.Status)
	}

	if len(notifier.events) != 1 || notifier.events[0].UserID != 20 {
		t.Fatalf("expected cancellation notice to the tutor, got %+v", notifier.events)
	}
}

func TestCancelPendingInsideWindow(t *testing.T) {
	repo := newStubRepo()
	start := monday(16, 0)
	b := seedBooking(repo, domain.StatusPending, start)

	uc := NewCancelBooking(repo, &stubNotify{}, &stubAudit{}, nopLogger())
	uc.clock = fixedClock(start.Add(-30 * time.Minute))

	if _, err := uc.Execute(context.Background(), studentActor, b.ID, ""); err != nil {
		t.Fatalf("pending booking must cancel regardless of lead time, got %v", err)
	}
}

func TestCancelBookingOnlyStudent(t *testing.T) {
	repo := newStubRepo()
	b := seedBooking(repo, domain.StatusPending, monday(16, 0))

	uc := NewCancelBooking(repo, &stubNotify{}, &stubAudit{}, nopLogger())
	uc.clock = fixedClock(monday(8, 0))

	if _, err := uc.Execute(context.Background(), tutorActor, b.ID, ""); !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("tutor cancelling: expected forbidden, got %v", err)
	}
}

// ------- Complete -------

func TestCompleteBooking(t *testing.T) {
	repo := newStubRepo()
	repo.profiles[20] = &models.TutorProfile{UserID: 20, IsApproved: true}
	start := monday(16, 0)
	b := seedBooking(repo, domain.StatusConfirmed, start)

	uc := NewCompleteBooking(repo, &stubNotify{}, &stubAudit{}, nopLogger())

	// Before the session ends.
	uc.clock = fixedClock(start.Add(30 * time.Minute))
	if _, err := uc.Execute(context.Background(), tutorActor, b.ID); !httperr.IsBusiness(err, "session_not_ended") {
		t.Fatalf("expected session_not_ended, got %v", err)
	}
	if len(repo.sessionsIncremented) != 0 {
		t.Fatal("failed completion must not bump the session counter")
	}

	// After the session ends.
	uc.clock = fixedClock(start.Add(2 * time.Hour))
	out, err := uc.Execute(context.Background(), tutorActor, b.ID)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Status != string(domain.StatusCompleted) {
		t.Fatalf("expected completed, got %s", out.Status)
	}
	if out.CompletedAt == nil {
		t.Fatal("expected CompletedAt to be stamped")
	}

	if len(repo.sessionsIncremented) != 1 || repo.sessionsIncremented[0] != 20 {
		t.Fatalf("expected one session increment for tutor 20, got %v", repo.sessionsIncremented)
	}
	if repo.profiles[20].SessionsCount != 1 {
		t.Fatalf("expected sessions_count 1, got %d", repo.profiles[20].SessionsCount)
	}
}

// ------- Delete -------

func TestDeleteBooking(t *testing.T) {
	repo := newStubRepo()
	uc := NewDeleteBooking(repo, &stubAudit{}, nopLogger())

	active := seedBooking(repo, domain.StatusConfirmed, monday(16, 0))
	if err := uc.Execute(context.Background(), studentActor, active.ID); !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("party deleting active booking: expected forbidden, got %v", err)
	}

	if err := uc.Execute(context.Background(), adminActor, active.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, ok := repo.bookings[active.ID]; ok {
		t.Fatal("expected booking removed")
	}

	cancelled := seedBooking(repo, domain.StatusCancelled, monday(16, 0))
	if err := uc.Execute(context.Background(), studentActor, cancelled.ID); err != nil {
		t.Fatalf("party deleting cancelled booking: %v", err)
	}

	if err := uc.Execute(context.Background(), adminActor, 999); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}

// ------- Meeting link -------

func TestSetMeetingLink(t *testing.T) {
	repo := newStubRepo()
	b := seedBooking(repo, domain.StatusConfirmed, monday(16, 0))

	uc := NewSetMeetingLink(repo, &stubAudit{}, nopLogger())

	out, err := uc.Execute(context.Background(), tutorActor, b.ID, "https://meet.example.com/room/42")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.MeetingLink != "https://meet.example.com/room/42" {
		t.Fatalf("expected link stored, got %q", out.MeetingLink)
	}

	if _, err := uc.Execute(context.Background(), tutorActor, b.ID, "not a url"); !httperr.IsBusiness(err, "invalid_meeting_link") {
		t.Fatalf("expected invalid_meeting_link, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), studentActor, b.ID, "https://meet.example.com/x"); !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("student setting link: expected forbidden, got %v", err)
	}

	pending := seedBooking(repo, domain.StatusPending, monday(18, 0))
	if _, err := uc.Execute(context.Background(), tutorActor, pending.ID, "https://meet.example.com/x"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("link on pending booking: expected invalid_state, got %v", err)
	}
}
