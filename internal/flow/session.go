package flow

import (
	"time"

	"bluevoyager/internal/domain/models"
	"bluevoyager/internal/utils"
)

// Toast is the transient failure banner. It never queues; a new failure
// replaces the message and restarts the dismiss timer.
type Toast struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
}

// Cursor is the calendar picker state. Selected is tentative until
// Proceed copies it into the draft; closing the picker discards it.
type Cursor struct {
	Field    string     `json:"field"`
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Selected *time.Time `json:"selected"`
}

// DraftDisplay is the short-date rendering the form shows for the two
// date fields, e.g. "3/15/2025". Empty until the calendar fills a date.
type DraftDisplay struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// Session is one visitor's booking popup. All mutation goes through the
// Store, which holds the lock; a Session value returned from the Store is
// a detached snapshot.
type Session struct {
	ID       string              `json:"id"`
	CabinID  string              `json:"cabinId"`
	VoyageID int64               `json:"voyageId,omitempty"`
	Stage    Stage               `json:"stage"`
	Draft    models.BookingDraft `json:"draft"`
	Display  DraftDisplay        `json:"display"`
	Calendar *Cursor             `json:"calendar,omitempty"`
	Toast    Toast               `json:"toast"`

	touched    time.Time
	toastGen   int
	successGen int
}

func (s *Session) snapshot() Session {
	out := *s
	if s.Calendar != nil {
		c := *s.Calendar
		out.Calendar = &c
	}
	out.Display = DraftDisplay{}
	if s.Draft.CheckIn != nil {
		out.Display.CheckIn = utils.FormatShortDate(*s.Draft.CheckIn)
	}
	if s.Draft.CheckOut != nil {
		out.Display.CheckOut = utils.FormatShortDate(*s.Draft.CheckOut)
	}
	return out
}
