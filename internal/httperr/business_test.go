package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestBusinessCodeRoundTrip(t *testing.T) {
	err := ErrBusiness("time_conflict")

	if !IsBusiness(err, "time_conflict") {
		t.Fatal("expected IsBusiness to match the code")
	}
	if IsBusiness(err, "forbidden") {
		t.Fatal("expected IsBusiness to reject other codes")
	}

	code, ok := BusinessCode(err)
	if !ok || code != "time_conflict" {
		t.Fatalf("BusinessCode = %q, %v", code, ok)
	}

	// Wrapped errors still unwrap to the code.
	wrapped := fmt.Errorf("create booking: %w", err)
	if !IsBusiness(wrapped, "time_conflict") {
		t.Fatal("expected wrapped error to match")
	}

	if _, ok := BusinessCode(errors.New("plain")); ok {
		t.Fatal("plain errors carry no business code")
	}
}

func TestIsExclusionConflict(t *testing.T) {
	if !IsExclusionConflict(&pgconn.PgError{Code: "23P01"}) {
		t.Fatal("exclusion violation must be detected")
	}
	if !IsExclusionConflict(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("unique violation must be detected")
	}
	if IsExclusionConflict(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation is not a slot conflict")
	}
	if IsExclusionConflict(errors.New("plain")) {
		t.Fatal("non-pg errors are not conflicts")
	}

	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	if !IsExclusionConflict(wrapped) {
		t.Fatal("wrapped pg errors must be detected")
	}
}
