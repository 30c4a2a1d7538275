package services

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"bluevoyager/internal/domain"
	"bluevoyager/internal/domain/models"
	"bluevoyager/internal/flow"
	"bluevoyager/internal/repositories"
)

func confirmedSession() flow.Session {
	in := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local)
	out := time.Date(2025, time.March, 22, 0, 0, 0, 0, time.Local)
	return flow.Session{
		ID:      "test-session",
		CabinID: "standard",
		Stage:   flow.StageBooking,
		Draft: models.BookingDraft{
			CheckIn:  &in,
			CheckOut: &out,
			Guests:   "3",
			FullName: "Ana Reyes",
			Email:    "ana@example.com",
			Phone:    "+49 171 2345678",
		},
	}
}

func TestConfirmFromFlowPersists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// The stored total is the flat per-guest price: 2199 x 3 guests. The
	// nightly display rate never enters the booking total.
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(
			sqlmock.AnyArg(), "standard", "Ocean View Cabin", int64(0),
			"2025-03-15", "2025-03-22", 3,
			"Ana Reyes", "ana@example.com", "+491712345678",
			int64(6597), "confirmed",
		).
		WillReturnResult(sqlmock.NewResult(7, 1))

	svc := BookingService{Repo: repositories.BookingRepository{DB: db}, RequestID: "req-1"}
	if err := svc.ConfirmFromFlow(confirmedSession()); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestConfirmFromFlowWithoutDB(t *testing.T) {
	svc := BookingService{RequestID: "req-1"}
	if err := svc.ConfirmFromFlow(confirmedSession()); err != nil {
		t.Fatalf("confirm without db should still succeed: %v", err)
	}
}

func TestConfirmFromFlowMissingDates(t *testing.T) {
	sess := confirmedSession()
	sess.Draft.CheckOut = nil

	svc := BookingService{}
	if err := svc.ConfirmFromFlow(sess); !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestConfirmFromFlowUnknownCabin(t *testing.T) {
	sess := confirmedSession()
	sess.CabinID = "penthouse"

	svc := BookingService{}
	if err := svc.ConfirmFromFlow(sess); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestConfirmFromFlowInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(errDBDown)

	svc := BookingService{Repo: repositories.BookingRepository{DB: db}}
	if err := svc.ConfirmFromFlow(confirmedSession()); !domain.IsInternal(err) {
		t.Fatalf("err = %v, want internal", err)
	}
}

func TestParseGuests(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 4 ", 4},
		{"", 2},
		{"zero", 2},
		{"0", 2},
		{"-1", 2},
	}
	for _, c := range cases {
		if got := parseGuests(c.raw); got != c.want {
			t.Errorf("parseGuests(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}
