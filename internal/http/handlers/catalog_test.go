package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bluevoyager/internal/domain/models"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/cabins", GetCabins)
	r.GET("/api/cabins/:id", GetCabinByID)
	r.GET("/api/voyages", GetVoyages)
	r.GET("/api/voyages/:id", GetVoyageByID)
	r.GET("/api/faqs", GetFAQs)
	return r
}

func getVoyage(t *testing.T, r *gin.Engine, path string) models.Voyage {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d body %s", path, w.Code, w.Body.String())
	}
	var out struct {
		Voyage models.Voyage `json:"voyage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out.Voyage
}

func TestGetVoyageByIDSeedsFromQuery(t *testing.T) {
	r := newCatalogRouter()
	base := getVoyage(t, r, "/api/voyages/1")

	v := getVoyage(t, r, "/api/voyages/1?name=Reef+Special&dives=12+dives&price=%E2%82%AC2%2C450&spaces=2&popular=true&duration=5+days")
	if v.Name != "Reef Special" || v.Dives != "12 dives" || v.Duration != "5 days" {
		t.Fatalf("overrides not applied: %+v", v)
	}
	if v.StartingPrice != 2450 || v.SpacesLeft != 2 || !v.Popular {
		t.Fatalf("numeric overrides not applied: %+v", v)
	}
	// Untouched fields keep the catalog values.
	if !v.Departure.Equal(base.Departure) || v.Description != base.Description {
		t.Fatalf("catalog fallbacks lost: %+v", v)
	}
}

func TestGetVoyageByIDFallsBackOnBadParams(t *testing.T) {
	r := newCatalogRouter()
	base := getVoyage(t, r, "/api/voyages/1")

	v := getVoyage(t, r, "/api/voyages/1?price=cheap&spaces=-4&popular=kinda")
	if v.StartingPrice != base.StartingPrice || v.SpacesLeft != base.SpacesLeft || v.Popular != base.Popular {
		t.Fatalf("unparsable params must fall back to catalog: got %+v, want %+v", v, base)
	}
}

func TestGetCabins(t *testing.T) {
	r := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/cabins", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var out struct {
		Cabins []models.Cabin `json:"cabins"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Cabins) != 3 {
		t.Fatalf("cabins = %d, want 3", len(out.Cabins))
	}
}

func TestGetCabinByIDNotFound(t *testing.T) {
	r := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/cabins/penthouse", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetVoyagesCustomRangeNeedsBothDates(t *testing.T) {
	r := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/voyages?filter=custom&from=2025-03-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetVoyagesFiltered(t *testing.T) {
	r := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/voyages?filter=feb2025", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var out struct {
		Voyages []models.Voyage `json:"voyages"`
		Count   int             `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != len(out.Voyages) {
		t.Fatalf("count = %d, voyages = %d", out.Count, len(out.Voyages))
	}
	for _, v := range out.Voyages {
		if v.Departure.Year() != 2025 || v.Departure.Month() != 2 {
			t.Errorf("voyage %q departs %s outside February 2025", v.Name, v.Departure)
		}
	}
}
