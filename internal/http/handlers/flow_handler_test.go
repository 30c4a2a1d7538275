package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bluevoyager/internal/availability"
	"bluevoyager/internal/flow"
)

func newFlowRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := flow.NewStore(availability.NewBlockList())
	st.Now = func() time.Time { return time.Date(2025, time.March, 1, 10, 0, 0, 0, time.Local) }
	t.Cleanup(st.Close)
	SetFlowStore(st)

	r := gin.New()
	fl := r.Group("/api/flow")
	fl.POST("", OpenFlow)
	fl.GET("/:id", GetFlow)
	fl.POST("/:id/book", BookNow)
	fl.POST("/:id/calendar", OpenCalendar)
	fl.GET("/:id/calendar", GetFlowCalendar)
	fl.POST("/:id/calendar/navigate", NavigateCalendar)
	fl.POST("/:id/calendar/select", SelectCalendarDay)
	fl.POST("/:id/calendar/proceed", ProceedCalendar)
	fl.DELETE("/:id/calendar", CloseCalendar)
	fl.PUT("/:id/draft", UpdateDraft)
	fl.POST("/:id/confirm", ConfirmFlow)
	fl.DELETE("/:id", CancelFlow)
	return r
}

type flowResponse struct {
	Session flow.Session `json:"session"`
	Error   string       `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, flowResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out flowResponse
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestFlowEndToEnd(t *testing.T) {
	r := newFlowRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/flow", `{"cabinId":"standard"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("open: status %d body %s", w.Code, w.Body.String())
	}
	id := resp.Session.ID
	if id == "" || resp.Session.Stage != flow.StageDetails {
		t.Fatalf("open response: %+v", resp.Session)
	}

	if w, resp = doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/book", ""); w.Code != http.StatusOK || resp.Session.Stage != flow.StageBooking {
		t.Fatalf("book: status %d stage %s", w.Code, resp.Session.Stage)
	}

	// Pick 15 March as check-in.
	if w, _ = doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/calendar", `{"field":"checkin"}`); w.Code != http.StatusOK {
		t.Fatalf("open calendar: %d %s", w.Code, w.Body.String())
	}
	if w, resp = doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/calendar/select", `{"day":15}`); w.Code != http.StatusOK {
		t.Fatalf("select: %d", w.Code)
	}
	if resp.Session.Calendar.Selected == nil {
		t.Fatalf("day 15 not selected")
	}
	if w, resp = doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/calendar/proceed", ""); w.Code != http.StatusOK {
		t.Fatalf("proceed: %d", w.Code)
	}
	if resp.Session.Draft.CheckIn == nil || resp.Session.Draft.CheckIn.Day() != 15 {
		t.Fatalf("check-in not written: %+v", resp.Session.Draft)
	}

	// Pick 22 March as check-out.
	doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/calendar", `{"field":"checkout"}`)
	doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/calendar/select", `{"day":22}`)
	doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/calendar/proceed", "")

	body := `{"guests":"3","fullName":"Ana Reyes","email":"ana@example.com","phone":"+49 171 2345678"}`
	if w, _ = doJSON(t, r, http.MethodPut, "/api/flow/"+id+"/draft", body); w.Code != http.StatusOK {
		t.Fatalf("draft: %d %s", w.Code, w.Body.String())
	}

	if w, resp = doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/confirm", ""); w.Code != http.StatusOK {
		t.Fatalf("confirm: %d %s", w.Code, w.Body.String())
	}
	if resp.Session.Stage != flow.StageSuccess {
		t.Fatalf("stage = %s, want success", resp.Session.Stage)
	}
}

func TestConfirmIncompleteDraft(t *testing.T) {
	r := newFlowRouter(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/flow", `{"cabinId":"deluxe"}`)
	id := resp.Session.ID
	doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/book", "")

	w, resp := doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/confirm", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("confirm: status %d, want 422", w.Code)
	}
	if !resp.Session.Toast.Visible {
		t.Fatalf("toast not raised: %+v", resp.Session.Toast)
	}
	if resp.Session.Stage != flow.StageBooking {
		t.Fatalf("stage = %s, want booking", resp.Session.Stage)
	}
}

func TestSelectBookedDayOverHTTP(t *testing.T) {
	r := newFlowRouter(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/flow", `{"cabinId":"standard"}`)
	id := resp.Session.ID
	doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/book", "")
	doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/calendar", `{"field":"checkin"}`)

	w, resp := doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/calendar/select", `{"day":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("select blocked day: status %d", w.Code)
	}
	if resp.Session.Calendar.Selected != nil {
		t.Fatalf("blocked day was selected")
	}
}

func TestFlowCalendarGrid(t *testing.T) {
	r := newFlowRouter(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/flow", `{"cabinId":"standard"}`)
	id := resp.Session.ID
	doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/book", "")
	doJSON(t, r, http.MethodPost, "/api/flow/"+id+"/calendar", `{"field":"checkin"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/flow/"+id+"/calendar", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("grid: status %d", w.Code)
	}

	var out struct {
		Grid availability.Grid `json:"grid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode grid: %v", err)
	}
	if out.Grid.Month != time.March || len(out.Grid.Days) != 31 {
		t.Fatalf("grid = %s with %d days", out.Grid.Month, len(out.Grid.Days))
	}
}

func TestUnknownFlowSession(t *testing.T) {
	r := newFlowRouter(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/flow/nope/book", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
