package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bluevoyager/internal/availability"
)

var availabilitySource availability.Source

// SetAvailabilitySource wires the source backing the public calendar.
func SetAvailabilitySource(src availability.Source) {
	availabilitySource = src
}

// GET /api/calendar?year=2025&month=3&voyage=1
func GetCalendar(c *gin.Context) {
	now := time.Now()

	year := now.Year()
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1970 || n > 2200 {
			RespondError(c, http.StatusBadRequest, "invalid year", err)
			return
		}
		year = n
	}

	month := now.Month()
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			RespondError(c, http.StatusBadRequest, "invalid month", err)
			return
		}
		month = time.Month(n)
	}

	var voyageID int64
	if v := c.Query("voyage"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid voyage id", err)
			return
		}
		voyageID = n
	}

	blocked, err := availabilitySource.BlockedDays(c.Request.Context(), voyageID, year, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": availability.MonthGrid(year, month, now, blocked)})
}
