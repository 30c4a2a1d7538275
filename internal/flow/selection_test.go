package flow

import (
	"testing"
	"time"

	"bluevoyager/internal/domain"
)

func TestToggle(t *testing.T) {
	cases := []struct {
		current, clicked, want string
	}{
		{"", "standard", "standard"},
		{"standard", "standard", ""},
		{"standard", "deluxe", "deluxe"},
		{"deluxe", "master", "master"},
	}
	for _, c := range cases {
		if got := Toggle(c.current, c.clicked); got != c.want {
			t.Errorf("Toggle(%q, %q) = %q, want %q", c.current, c.clicked, got, c.want)
		}
	}
}

func TestSelectionToggleAndTotal(t *testing.T) {
	st := NewSelectionStore()

	sel := st.Open()
	if sel.CabinID != "" || sel.Guests != 2 {
		t.Fatalf("fresh dialog: %+v", sel)
	}

	sel, err := st.ToggleCabin(sel.ID, "standard")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if sel.CabinID != "standard" {
		t.Fatalf("cabin = %q", sel.CabinID)
	}
	if sel.Total != 2199*2 {
		t.Fatalf("total = %d, want %d", sel.Total, 2199*2)
	}

	sel, err = st.AdjustGuests(sel.ID, 1)
	if err != nil {
		t.Fatalf("adjust guests: %v", err)
	}
	if sel.Guests != 3 || sel.Total != 6597 {
		t.Fatalf("guests=%d total=%d, want 3 and 6597", sel.Guests, sel.Total)
	}

	// Clicking the highlighted cabin clears the choice and the total.
	sel, err = st.ToggleCabin(sel.ID, "standard")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if sel.CabinID != "" || sel.Total != 0 {
		t.Fatalf("after deselect: %+v", sel)
	}
}

func TestSelectionGuestsFloor(t *testing.T) {
	st := NewSelectionStore()
	sel := st.Open()

	sel, err := st.AdjustGuests(sel.ID, -5)
	if err != nil {
		t.Fatalf("adjust guests: %v", err)
	}
	if sel.Guests != 1 {
		t.Fatalf("guests = %d, want 1", sel.Guests)
	}

	sel, err = st.AdjustGuests(sel.ID, -1)
	if err != nil {
		t.Fatalf("adjust at floor: %v", err)
	}
	if sel.Guests != 1 {
		t.Fatalf("guests dropped below 1: %d", sel.Guests)
	}
}

func TestSelectionUnknownCabin(t *testing.T) {
	st := NewSelectionStore()
	sel := st.Open()

	if _, err := st.ToggleCabin(sel.ID, "penthouse"); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestSelectionSweep(t *testing.T) {
	st := NewSelectionStore()
	st.TTL = time.Minute
	sel := st.Open()

	st.Now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	st.Sweep()

	if _, err := st.Get(sel.ID); !domain.IsNotFound(err) {
		t.Fatalf("stale dialog survived sweep: %v", err)
	}
}
