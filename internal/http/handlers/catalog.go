package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bluevoyager/internal/catalog"
	"bluevoyager/internal/utils"
)

// GET /api/cabins
func GetCabins(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cabins": catalog.Cabins()})
}

// GET /api/cabins/:id
func GetCabinByID(c *gin.Context) {
	cabin, err := catalog.CabinByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cabin": cabin})
}

// GET /api/voyages?filter=3months&from=2025-03-01&to=2025-03-31
func GetVoyages(c *gin.Context) {
	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := utils.ParseDate(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid from date", err)
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := utils.ParseDate(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid to date", err)
			return
		}
		to = &t
	}

	voyages, err := catalog.FilterVoyages(c.Query("filter"), from, to, time.Now())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voyages": voyages, "count": len(voyages)})
}

// GET /api/voyages/:id?name=&dives=&duration=&dates=&price=&spaces=&popular=
//
// Navigation context travels as query parameters. A present parameter
// overrides the catalog row; an absent or unparsable one falls back to
// the catalog value.
func GetVoyageByID(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	v, err := catalog.VoyageByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if s := c.Query("name"); s != "" {
		v.Name = s
	}
	if s := c.Query("dives"); s != "" {
		v.Dives = s
	}
	if s := c.Query("duration"); s != "" {
		v.Duration = s
	}
	if s := c.Query("dates"); s != "" {
		v.Dates = s
	}
	if s := c.Query("price"); s != "" {
		if n, err := utils.ParseEURToInt(s); err == nil && n > 0 {
			v.StartingPrice = n
		}
	}
	if s := c.Query("spaces"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			v.SpacesLeft = n
		}
	}
	if s := c.Query("popular"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			v.Popular = b
		}
	}

	c.JSON(http.StatusOK, gin.H{"voyage": v})
}

// GET /api/faqs
func GetFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"faqs": catalog.FAQs()})
}

// GET /api/dive-sites
func GetDiveSites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diveSites": catalog.DiveSites()})
}

// GET /api/itinerary
func GetItinerary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": catalog.ItineraryDays()})
}
