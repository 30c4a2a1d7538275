package flow

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bluevoyager/internal/availability"
	"bluevoyager/internal/catalog"
	"bluevoyager/internal/domain"
	"bluevoyager/internal/domain/models"
	"bluevoyager/internal/utils"
)

const (
	defaultToastTTL   = 2 * time.Second
	defaultSuccessTTL = 3 * time.Second
	defaultSessionTTL = 30 * time.Minute
)

// Store owns every live flow session. All stage transitions happen under
// its lock; timer callbacks re-acquire it and check a generation counter
// so a stale timer can never clobber newer state.
type Store struct {
	Availability availability.Source

	// OnConfirm runs after a draft passes validation and before the stage
	// moves to success. A non-nil error keeps the session on the form.
	OnConfirm func(Session) error

	// Now is injectable for tests.
	Now func() time.Time

	ToastTTL   time.Duration
	SuccessTTL time.Duration
	SessionTTL time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	done     chan struct{}
}

func NewStore(src availability.Source) *Store {
	st := &Store{
		Availability: src,
		Now:          time.Now,
		ToastTTL:     defaultToastTTL,
		SuccessTTL:   defaultSuccessTTL,
		SessionTTL:   defaultSessionTTL,
		sessions:     map[string]*Session{},
		done:         make(chan struct{}),
	}
	go st.janitor()
	return st
}

// Close stops the janitor. Pending timers become no-ops once their
// session is dropped.
func (st *Store) Close() {
	select {
	case <-st.done:
	default:
		close(st.done)
	}
}

func (st *Store) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-st.done:
			return
		case <-ticker.C:
			cutoff := st.Now().Add(-st.SessionTTL)
			st.mu.Lock()
			for id, sess := range st.sessions {
				if sess.touched.Before(cutoff) {
					delete(st.sessions, id)
				}
			}
			st.mu.Unlock()
		}
	}
}

// Open starts a new session showing the details view for the given cabin.
func (st *Store) Open(cabinID string, voyageID int64) (Session, error) {
	if _, err := catalog.CabinByID(cabinID); err != nil {
		return Session{}, err
	}

	sess := &Session{
		ID:       uuid.NewString(),
		CabinID:  cabinID,
		VoyageID: voyageID,
		Stage:    StageDetails,
		touched:  st.Now(),
	}

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	utils.LogEvent(sess.ID, "flow", "open", fmt.Sprintf("cabin=%s", cabinID))
	return sess.snapshot(), nil
}

// Get returns the current state of a session.
func (st *Store) Get(id string) (Session, error) {
	return st.withSession(id, func(*Session) error { return nil })
}

// Delete drops a session. Its timers die with it.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// BookNow moves from the details view to the booking form.
func (st *Store) BookNow(id string) (Session, error) {
	return st.withSession(id, func(s *Session) error {
		switch s.Stage {
		case StageDetails, StageBooking:
			s.Stage = StageBooking
			return nil
		default:
			return domain.ConflictError{Resource: "flow", Msg: fmt.Sprintf("cannot open booking form from stage %q", s.Stage)}
		}
	})
}

// OpenCalendar opens the date picker for one draft field. The cursor
// starts on the month of the already-chosen date, or the current month.
func (st *Store) OpenCalendar(id, field string) (Session, error) {
	if field != FieldCheckIn && field != FieldCheckOut {
		return Session{}, domain.ValidationError{Field: "field", Msg: "must be checkin or checkout"}
	}
	return st.withSession(id, func(s *Session) error {
		if s.Stage != StageBooking {
			return domain.ConflictError{Resource: "flow", Msg: "calendar opens from the booking form"}
		}

		anchor := st.Now()
		var selected *time.Time
		if existing := draftDate(s.Draft, field); existing != nil {
			anchor = *existing
			d := *existing
			selected = &d
		}

		s.Calendar = &Cursor{
			Field:    field,
			Year:     anchor.Year(),
			Month:    anchor.Month(),
			Selected: selected,
		}
		s.Stage = StageCalendar
		return nil
	})
}

// Navigate moves the displayed month. The tentative selection survives
// navigation; only closing the picker discards it.
func (st *Store) Navigate(id string, delta int) (Session, error) {
	return st.withSession(id, func(s *Session) error {
		if s.Stage != StageCalendar || s.Calendar == nil {
			return domain.ConflictError{Resource: "flow", Msg: "calendar is not open"}
		}
		anchor := time.Date(s.Calendar.Year, s.Calendar.Month, 1, 0, 0, 0, 0, time.Local)
		next := anchor.AddDate(0, delta, 0)
		s.Calendar.Year = next.Year()
		s.Calendar.Month = next.Month()
		return nil
	})
}

// SelectDay marks a day in the displayed month as the tentative choice.
// Past and booked days are inert: the call succeeds but changes nothing.
func (st *Store) SelectDay(ctx context.Context, id string, day int) (Session, error) {
	return st.withSession(id, func(s *Session) error {
		if s.Stage != StageCalendar || s.Calendar == nil {
			return domain.ConflictError{Resource: "flow", Msg: "calendar is not open"}
		}

		first := time.Date(s.Calendar.Year, s.Calendar.Month, 1, 0, 0, 0, 0, time.Local)
		if day < 1 || day > first.AddDate(0, 1, -1).Day() {
			return domain.ValidationError{Field: "day", Msg: "outside displayed month"}
		}

		blocked, err := st.Availability.BlockedDays(ctx, s.VoyageID, s.Calendar.Year, s.Calendar.Month)
		if err != nil {
			return domain.InternalError{Msg: "availability lookup failed", Err: err}
		}

		date := time.Date(s.Calendar.Year, s.Calendar.Month, day, 0, 0, 0, 0, time.Local)
		if availability.Classify(date, st.Now(), blocked) != availability.StatusAvailable {
			return nil
		}
		s.Calendar.Selected = &date
		return nil
	})
}

// Grid renders the displayed month with availability classification.
func (st *Store) Grid(ctx context.Context, id string) (availability.Grid, error) {
	sess, err := st.Get(id)
	if err != nil {
		return availability.Grid{}, err
	}
	if sess.Stage != StageCalendar || sess.Calendar == nil {
		return availability.Grid{}, domain.ConflictError{Resource: "flow", Msg: "calendar is not open"}
	}

	blocked, err := st.Availability.BlockedDays(ctx, sess.VoyageID, sess.Calendar.Year, sess.Calendar.Month)
	if err != nil {
		return availability.Grid{}, domain.InternalError{Msg: "availability lookup failed", Err: err}
	}
	return availability.MonthGrid(sess.Calendar.Year, sess.Calendar.Month, st.Now(), blocked), nil
}

// Proceed commits the tentative selection into the draft and returns to
// the form.
func (st *Store) Proceed(id string) (Session, error) {
	return st.withSession(id, func(s *Session) error {
		if s.Stage != StageCalendar || s.Calendar == nil {
			return domain.ConflictError{Resource: "flow", Msg: "calendar is not open"}
		}
		if s.Calendar.Selected == nil {
			return domain.ValidationError{Field: s.Calendar.Field, Msg: "no date selected"}
		}

		d := *s.Calendar.Selected
		switch s.Calendar.Field {
		case FieldCheckIn:
			s.Draft.CheckIn = &d
		case FieldCheckOut:
			s.Draft.CheckOut = &d
		}
		s.Calendar = nil
		s.Stage = StageBooking
		return nil
	})
}

// CloseCalendar abandons the picker. The tentative selection is dropped
// and the draft keeps whatever date it already had.
func (st *Store) CloseCalendar(id string) (Session, error) {
	return st.withSession(id, func(s *Session) error {
		if s.Stage != StageCalendar {
			return domain.ConflictError{Resource: "flow", Msg: "calendar is not open"}
		}
		s.Calendar = nil
		s.Stage = StageBooking
		return nil
	})
}

// DraftUpdate carries partial form edits. Nil fields are untouched.
// Dates are absent on purpose; they only enter through the calendar.
type DraftUpdate struct {
	Guests   *string `json:"guests"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// UpdateDraft applies form edits while the form (or the picker above it)
// is open.
func (st *Store) UpdateDraft(id string, upd DraftUpdate) (Session, error) {
	return st.withSession(id, func(s *Session) error {
		if s.Stage != StageBooking && s.Stage != StageCalendar {
			return domain.ConflictError{Resource: "flow", Msg: "booking form is not open"}
		}
		if upd.Guests != nil {
			s.Draft.Guests = *upd.Guests
		}
		if upd.FullName != nil {
			s.Draft.FullName = *upd.FullName
		}
		if upd.Email != nil {
			s.Draft.Email = *upd.Email
		}
		if upd.Phone != nil {
			s.Draft.Phone = *upd.Phone
		}
		return nil
	})
}

// Confirm validates the draft and either moves to the success view or
// raises the failure toast. The draft is preserved on failure so the
// visitor only fills in what is missing.
func (st *Store) Confirm(id string) (Session, error) {
	return st.withSession(id, func(s *Session) error {
		if s.Stage != StageBooking {
			return domain.ConflictError{Resource: "flow", Msg: "booking form is not open"}
		}

		if missing := missingFields(s.Draft); len(missing) > 0 {
			st.raiseToast(s, "Please fill in all the fields")
			return domain.ValidationError{
				Field: strings.Join(missing, ","),
				Msg:   "required",
			}
		}

		if st.OnConfirm != nil {
			if err := st.OnConfirm(s.snapshot()); err != nil {
				st.raiseToast(s, "Could not save your booking. Please try again.")
				return err
			}
		}

		s.Toast = Toast{}
		s.toastGen++
		s.Stage = StageSuccess
		st.armSuccessReset(s)
		utils.LogEvent(s.ID, "flow", "confirm", fmt.Sprintf("cabin=%s email=%s", s.CabinID, s.Draft.Email))
		return nil
	})
}

func missingFields(d models.BookingDraft) []string {
	var missing []string
	if d.CheckIn == nil {
		missing = append(missing, "checkIn")
	}
	if d.CheckOut == nil {
		missing = append(missing, "checkOut")
	}
	if strings.TrimSpace(d.FullName) == "" {
		missing = append(missing, "fullName")
	}
	if strings.TrimSpace(d.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(d.Phone) == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// raiseToast replaces the banner and restarts its dismiss timer. Caller
// holds the lock.
func (st *Store) raiseToast(s *Session, msg string) {
	s.Toast = Toast{Visible: true, Message: msg}
	s.toastGen++
	gen := s.toastGen
	sid := s.ID
	time.AfterFunc(st.ToastTTL, func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		sess, ok := st.sessions[sid]
		if !ok || sess.toastGen != gen {
			return
		}
		sess.Toast = Toast{}
	})
}

// armSuccessReset schedules the return from the success view: the draft
// goes back to its empty shape and the popup closes. Caller holds the
// lock.
func (st *Store) armSuccessReset(s *Session) {
	s.successGen++
	gen := s.successGen
	sid := s.ID
	time.AfterFunc(st.SuccessTTL, func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		sess, ok := st.sessions[sid]
		if !ok || sess.successGen != gen || sess.Stage != StageSuccess {
			return
		}
		sess.Draft = models.BookingDraft{}
		sess.Calendar = nil
		sess.Stage = StageClosed
	})
}

func (st *Store) withSession(id string, fn func(*Session) error) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return Session{}, domain.NotFoundError{Resource: "flow session"}
	}
	sess.touched = st.Now()
	if err := fn(sess); err != nil {
		return sess.snapshot(), err
	}
	return sess.snapshot(), nil
}

func draftDate(d models.BookingDraft, field string) *time.Time {
	if field == FieldCheckIn {
		return d.CheckIn
	}
	return d.CheckOut
}
