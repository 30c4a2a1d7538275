package availability

import (
	"time"

	"bluevoyager/internal/utils"
)

type DayStatus string

const (
	StatusPast      DayStatus = "past"
	StatusBooked    DayStatus = "booked"
	StatusAvailable DayStatus = "available"
)

type DayCell struct {
	Day    int       `json:"day"`
	Date   time.Time `json:"date"`
	Status DayStatus `json:"status"`
}

// Grid is one displayed calendar month. Offset is the weekday of the 1st
// (Sunday = 0); renderers left-pad that many empty cells.
type Grid struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Label  string     `json:"label"`
	Offset int        `json:"offset"`
	Days   []DayCell  `json:"days"`
}

// Classify applies the availability rules to a single date: past wins over
// booked, booked over available. Both inputs are compared at local midnight.
func Classify(date, today time.Time, blocked map[int]bool) DayStatus {
	d := utils.Midnight(date)
	if d.Before(utils.Midnight(today)) {
		return StatusPast
	}
	if blocked[d.Day()] {
		return StatusBooked
	}
	return StatusAvailable
}

// MonthGrid classifies every day of the given month.
func MonthGrid(year int, month time.Month, today time.Time, blocked map[int]bool) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	g := Grid{
		Year:   year,
		Month:  month,
		Label:  first.Format("January 2006"),
		Offset: int(first.Weekday()),
		Days:   make([]DayCell, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		g.Days = append(g.Days, DayCell{
			Day:    day,
			Date:   date,
			Status: Classify(date, today, blocked),
		})
	}
	return g
}
