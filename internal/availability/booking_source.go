package availability

import (
	"context"
	"time"

	"bluevoyager/internal/repositories"
)

// BookingSource derives blocked days from confirmed bookings in MySQL.
type BookingSource struct {
	Repo repositories.BookingRepository
}

func (s BookingSource) BlockedDays(_ context.Context, voyageID int64, year int, month time.Month) (map[int]bool, error) {
	return s.Repo.BookedDays(voyageID, year, month)
}
