package booking

import (
	"testing"
	"time"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

func TestOverlaps(t *testing.T) {
	base := mondayAt(16, 0)

	cases := []struct {
		name   string
		s2, e2 time.Time
		want   bool
	}{
		{"identical", base, base.Add(time.Hour), true},
		{"contained", base.Add(10 * time.Minute), base.Add(30 * time.Minute), true},
		{"straddles start", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"straddles end", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"touches end", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"touches start", base.Add(-time.Hour), base, false},
		{"disjoint", base.Add(3 * time.Hour), base.Add(4 * time.Hour), false},
	}

	for _, c := range cases {
		if got := Overlaps(base, base.Add(time.Hour), c.s2, c.e2); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFindConflictSkipsInactiveAndExcluded(t *testing.T) {
	start := mondayAt(16, 0)
	end := start.Add(time.Hour)

	bs := []models.Booking{
		{ID: 1, Status: string(StatusCancelled), StartAt: start, EndAt: end},
		{ID: 2, Status: string(StatusRejected), StartAt: start, EndAt: end},
		{ID: 3, Status: string(StatusCompleted), StartAt: start, EndAt: end},
	}

	if c := FindConflict(bs, start, end, 0); c != nil {
		t.Fatalf("expected no conflict against inactive bookings, got %d", c.ID)
	}

	bs = append(bs, models.Booking{ID: 4, Status: string(StatusConfirmed), StartAt: start, EndAt: end})
	c := FindConflict(bs, start, end, 0)
	if c == nil || c.ID != 4 {
		t.Fatalf("expected conflict with booking 4, got %v", c)
	}

	if c := FindConflict(bs, start, end, 4); c != nil {
		t.Fatalf("expected excluded booking to be skipped, got %d", c.ID)
	}

	bs = append(bs, models.Booking{ID: 5, Status: string(StatusPending), StartAt: end, EndAt: end.Add(time.Hour)})
	if c := FindConflict(bs, start, end, 4); c != nil {
		t.Fatalf("back-to-back booking must not conflict, got %d", c.ID)
	}
}
