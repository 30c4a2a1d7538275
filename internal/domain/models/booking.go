package models

import "time"

// BookingDraft is the mutable state of one in-progress booking attempt.
// Dates are populated only via the calendar picker, never typed. Guests is
// kept as free text mirroring the numeric input field; it is not required
// for confirmation.
type BookingDraft struct {
	CheckIn  *time.Time `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
	Guests   string     `json:"guests"`
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
}

// Empty reports whether the draft is back at its initial shape.
func (d BookingDraft) Empty() bool {
	return d.CheckIn == nil && d.CheckOut == nil &&
		d.Guests == "" && d.FullName == "" && d.Email == "" && d.Phone == ""
}

// Booking is a confirmed reservation.
type Booking struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	CabinID   string    `json:"cabinId"`
	CabinName string    `json:"cabinName"`
	VoyageID  int64     `json:"voyageId,omitempty"`
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	Guests    int       `json:"guests"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// CheckoutPayload is the body sent to the external checkout-session
// collaborator.
type CheckoutPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Guests int    `json:"guests"`
	Total  int64  `json:"total"`
}
