package booking

import (
	"reflect"
	"testing"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

func TestGuardOwnership(t *testing.T) {
	b := newBooking(StatusPending, mondayAt(16, 0))

	student := Actor{ID: 10, Role: models.RoleStudent}
	tutor := Actor{ID: 20, Role: models.RoleTeacher}
	admin := Actor{ID: 99, Role: models.RoleAdmin}
	stranger := Actor{ID: 33, Role: models.RoleStudent}

	if !student.MayRead(b) || !tutor.MayRead(b) || !admin.MayRead(b) {
		t.Fatal("parties and admin must be able to read the booking")
	}
	if stranger.MayRead(b) {
		t.Fatal("unrelated user must not read the booking")
	}

	if !tutor.MayConfirm(b) || !tutor.MayReject(b) || !tutor.MayComplete(b) || !tutor.MaySetMeetingLink(b) {
		t.Fatal("booked tutor must hold tutor-side operations")
	}
	if student.MayConfirm(b) || admin.MayConfirm(b) {
		t.Fatal("confirm belongs to the booked tutor only")
	}

	if !student.MayCancel(b) || !student.MayReview(b) {
		t.Fatal("booking student must hold student-side operations")
	}
	if tutor.MayCancel(b) || stranger.MayCancel(b) {
		t.Fatal("cancel belongs to the booking student only")
	}

	// Same person wearing the wrong role is still refused.
	tutorAsStudent := Actor{ID: 20, Role: models.RoleStudent}
	if tutorAsStudent.MayConfirm(b) {
		t.Fatal("tutor-side operations require the teacher role")
	}
}

func TestMayDelete(t *testing.T) {
	admin := Actor{ID: 99, Role: models.RoleAdmin}
	student := Actor{ID: 10, Role: models.RoleStudent}
	stranger := Actor{ID: 33, Role: models.RoleStudent}

	active := newBooking(StatusConfirmed, mondayAt(16, 0))
	if !admin.MayDelete(active) {
		t.Fatal("admin may delete regardless of state")
	}
	if student.MayDelete(active) {
		t.Fatal("party may not delete an active booking")
	}

	done := newBooking(StatusCancelled, mondayAt(16, 0))
	if !student.MayDelete(done) {
		t.Fatal("party may delete a cancelled booking")
	}
	if stranger.MayDelete(done) {
		t.Fatal("unrelated user may never delete")
	}

	completed := newBooking(StatusCompleted, mondayAt(16, 0))
	if student.MayDelete(completed) {
		t.Fatal("completed bookings stay; only admin removes them")
	}
}

func TestAllowedTransitions(t *testing.T) {
	student := Actor{ID: 10, Role: models.RoleStudent}
	tutor := Actor{ID: 20, Role: models.RoleTeacher}

	pending := newBooking(StatusPending, mondayAt(16, 0))
	if got := AllowedTransitions(tutor, pending); !reflect.DeepEqual(got, []string{"confirm", "reject"}) {
		t.Fatalf("tutor on pending: got %v", got)
	}
	if got := AllowedTransitions(student, pending); !reflect.DeepEqual(got, []string{"cancel"}) {
		t.Fatalf("student on pending: got %v", got)
	}

	confirmed := newBooking(StatusConfirmed, mondayAt(16, 0))
	if got := AllowedTransitions(tutor, confirmed); !reflect.DeepEqual(got, []string{"complete", "meeting_link"}) {
		t.Fatalf("tutor on confirmed: got %v", got)
	}
	if got := AllowedTransitions(student, confirmed); !reflect.DeepEqual(got, []string{"cancel"}) {
		t.Fatalf("student on confirmed: got %v", got)
	}

	completed := newBooking(StatusCompleted, mondayAt(16, 0))
	if got := AllowedTransitions(student, completed); !reflect.DeepEqual(got, []string{"review"}) {
		t.Fatalf("student on completed: got %v", got)
	}
	if got := AllowedTransitions(tutor, completed); got != nil {
		t.Fatalf("tutor on completed: got %v", got)
	}

	cancelled := newBooking(StatusCancelled, mondayAt(16, 0))
	if got := AllowedTransitions(student, cancelled); !reflect.DeepEqual(got, []string{"delete"}) {
		t.Fatalf("student on cancelled: got %v", got)
	}
}
