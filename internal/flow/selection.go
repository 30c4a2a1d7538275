package flow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"bluevoyager/internal/catalog"
	"bluevoyager/internal/domain"
)

const defaultGuests = 2

// Selection is the cabin-selection dialog: at most one cabin highlighted,
// a guest count with a floor of one, and a total of base price times
// guests.
type Selection struct {
	ID      string `json:"id"`
	CabinID string `json:"cabinId"`
	Guests  int    `json:"guests"`
	Total   int64  `json:"total"`

	touched time.Time
}

// Toggle returns the highlighted cabin after clicking one: clicking the
// current cabin clears the choice, clicking another replaces it.
func Toggle(current, clicked string) string {
	if current == clicked {
		return ""
	}
	return clicked
}

// SelectionStore holds live selection dialogs.
type SelectionStore struct {
	Now func() time.Time
	TTL time.Duration

	mu         sync.Mutex
	selections map[string]*Selection
}

func NewSelectionStore() *SelectionStore {
	return &SelectionStore{
		Now:        time.Now,
		TTL:        defaultSessionTTL,
		selections: map[string]*Selection{},
	}
}

// Open starts a dialog with no cabin highlighted.
func (st *SelectionStore) Open() Selection {
	sel := &Selection{
		ID:      uuid.NewString(),
		Guests:  defaultGuests,
		touched: st.Now(),
	}
	st.mu.Lock()
	st.selections[sel.ID] = sel
	st.mu.Unlock()
	return *sel
}

func (st *SelectionStore) Get(id string) (Selection, error) {
	return st.with(id, func(*Selection) error { return nil })
}

func (st *SelectionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.selections, id)
	st.mu.Unlock()
}

// ToggleCabin highlights a cabin, or clears the highlight when the same
// cabin is clicked again.
func (st *SelectionStore) ToggleCabin(id, cabinID string) (Selection, error) {
	if _, err := catalog.CabinByID(cabinID); err != nil {
		return Selection{}, err
	}
	return st.with(id, func(s *Selection) error {
		s.CabinID = Toggle(s.CabinID, cabinID)
		return nil
	})
}

// AdjustGuests applies a delta to the guest count. The count never drops
// below one; a decrement at one succeeds and changes nothing.
func (st *SelectionStore) AdjustGuests(id string, delta int) (Selection, error) {
	return st.with(id, func(s *Selection) error {
		next := s.Guests + delta
		if next < 1 {
			next = 1
		}
		s.Guests = next
		return nil
	})
}

// Sweep drops dialogs idle longer than the TTL.
func (st *SelectionStore) Sweep() {
	cutoff := st.Now().Add(-st.TTL)
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, sel := range st.selections {
		if sel.touched.Before(cutoff) {
			delete(st.selections, id)
		}
	}
}

func (st *SelectionStore) with(id string, fn func(*Selection) error) (Selection, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sel, ok := st.selections[id]
	if !ok {
		return Selection{}, domain.NotFoundError{Resource: "selection"}
	}
	sel.touched = st.Now()
	if err := fn(sel); err != nil {
		return *sel, err
	}
	sel.Total = st.total(sel)
	return *sel, nil
}

func (st *SelectionStore) total(s *Selection) int64 {
	if s.CabinID == "" {
		return 0
	}
	cabin, err := catalog.CabinByID(s.CabinID)
	if err != nil {
		return 0
	}
	return cabin.BasePrice * int64(s.Guests)
}
