package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"bluevoyager/internal/catalog"
	"bluevoyager/internal/domain"
	"bluevoyager/internal/domain/models"
	"bluevoyager/internal/flow"
	"bluevoyager/internal/repositories"
	"bluevoyager/internal/utils"
)

// BookingService turns confirmed flow sessions into stored bookings.
type BookingService struct {
	Repo      repositories.BookingRepository
	RequestID string
}

// ConfirmFromFlow is wired as the flow store's OnConfirm hook. The store
// has already checked field presence; this revalidates, prices the stay,
// and persists when a database is configured.
func (s BookingService) ConfirmFromFlow(sess flow.Session) error {
	d := sess.Draft
	if d.CheckIn == nil || d.CheckOut == nil {
		return domain.ValidationError{Field: "dates", Msg: "check-in and check-out are required"}
	}

	cabin, err := catalog.CabinByID(sess.CabinID)
	if err != nil {
		return err
	}

	// Pricing is a flat per-guest trip total, never per night.
	guests := parseGuests(d.Guests)

	b := models.Booking{
		Reference: "BV-" + strings.ToUpper(uuid.NewString()[:8]),
		CabinID:   cabin.ID,
		CabinName: cabin.Name,
		VoyageID:  sess.VoyageID,
		CheckIn:   *d.CheckIn,
		CheckOut:  *d.CheckOut,
		Guests:    guests,
		FullName:  strings.TrimSpace(d.FullName),
		Email:     strings.TrimSpace(d.Email),
		Phone:     utils.NormalizePhone(d.Phone),
		Total:     cabin.BasePrice * int64(guests),
		Status:    "confirmed",
	}

	if s.Repo.DB == nil {
		// Without a database the flow still completes; the booking only
		// lives in the confirmation log.
		utils.LogEvent(s.RequestID, "booking", "confirm_unpersisted", fmt.Sprintf("ref=%s cabin=%s", b.Reference, b.CabinID))
		return nil
	}

	id, err := s.Repo.Create(b)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "confirm", "insert failed: "+err.Error())
		return domain.InternalError{Msg: "store booking", Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "confirm", fmt.Sprintf("id=%d ref=%s total=%s", id, b.Reference, utils.FormatEUR(b.Total)))
	return nil
}

// List returns recent bookings for the admin surface.
func (s BookingService) List(limit int) ([]models.Booking, error) {
	return s.Repo.List(limit)
}

// GetByReference looks a booking up by its public reference.
func (s BookingService) GetByReference(ref string) (models.Booking, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Booking{}, domain.ValidationError{Field: "reference", Msg: "required"}
	}
	return s.Repo.GetByReference(ref)
}

// parseGuests reads the free-text guests field. Anything unusable falls
// back to the form default of two.
func parseGuests(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 2
	}
	return n
}
