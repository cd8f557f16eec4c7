package booking

import "github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"

// ===============================
// Role-Scoped Access Guard
// ===============================

// Actor is the authenticated caller. Role and ID come from the session
// token and are passed explicitly; the guard never reads ambient context.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func (a Actor) OwnsAsStudent(b *models.Booking) bool {
	return a.Role == models.RoleStudent && a.ID == b.StudentID
}

func (a Actor) OwnsAsTutor(b *models.Booking) bool {
	return a.Role == models.RoleTeacher && a.ID == b.TutorID
}

// MayRead allows either party, or an admin, to see the booking.
func (a Actor) MayRead(b *models.Booking) bool {
	return a.IsAdmin() || a.ID == b.StudentID || a.ID == b.TutorID
}

func (a Actor) MayConfirm(b *models.Booking) bool {
	return a.OwnsAsTutor(b)
}

func (a Actor) MayReject(b *models.Booking) bool {
	return a.OwnsAsTutor(b)
}

func (a Actor) MayComplete(b *models.Booking) bool {
	return a.OwnsAsTutor(b)
}

func (a Actor) MaySetMeetingLink(b *models.Booking) bool {
	return a.OwnsAsTutor(b)
}

func (a Actor) MayCancel(b *models.Booking) bool {
	return a.OwnsAsStudent(b)
}

func (a Actor) MayReview(b *models.Booking) bool {
	return a.OwnsAsStudent(b)
}

// MayDelete allows admins unconditionally; a booking party may only
// delete rows already out of the active lifecycle.
func (a Actor) MayDelete(b *models.Booking) bool {
	if a.IsAdmin() {
		return true
	}
	if a.ID != b.StudentID && a.ID != b.TutorID {
		return false
	}
	s := Status(b.Status)
	return s == StatusCancelled || s == StatusRejected
}

// AllowedTransitions enumerates the operations the actor may currently
// invoke on the booking, taking both ownership and state into account.
func AllowedTransitions(a Actor, b *models.Booking) []string {
	var ops []string

	if a.MayConfirm(b) && CanConfirm(Status(b.Status)) == nil {
		ops = append(ops, "confirm")
	}
	if a.MayReject(b) && CanReject(Status(b.Status)) == nil {
		ops = append(ops, "reject")
	}
	if a.MayCancel(b) && CanCancel(Status(b.Status)) == nil {
		ops = append(ops, "cancel")
	}
	if a.MayComplete(b) && CanComplete(Status(b.Status)) == nil {
		ops = append(ops, "complete")
	}
	if a.MaySetMeetingLink(b) && Status(b.Status) == StatusConfirmed {
		ops = append(ops, "meeting_link")
	}
	if a.MayReview(b) && Status(b.Status) == StatusCompleted {
		ops = append(ops, "review")
	}
	if a.MayDelete(b) {
		ops = append(ops, "delete")
	}

	return ops
}
