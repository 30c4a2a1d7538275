package catalog

import (
	"fmt"
	"time"

	"bluevoyager/internal/domain"
	"bluevoyager/internal/domain/models"
)

func departure(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

var voyages = []models.Voyage{
	{
		ID:            1,
		Name:          "North Male Atolls Classic",
		Popular:       true,
		Departure:     departure(2025, time.February, 16),
		Duration:      "7 Days / 6 Nights",
		Dives:         "18-20 Dives",
		Dates:         "Feb 16 - Feb 23",
		Description:   "Explore the stunning dive sites of North Male Atoll, featuring pristine coral reefs, vibrant marine life, and unforgettable underwater experiences. This classic route has been carefully designed to showcase the best of the Maldives diving.",
		StartingPrice: 2199,
		SpacesLeft:    6,
	},
	{
		ID:            2,
		Name:          "South Ari Explorer",
		Departure:     departure(2025, time.February, 23),
		Duration:      "7 Days / 6 Nights",
		Dives:         "16-18 Dives",
		Dates:         "Feb 23 - Mar 2",
		Description:   "Discover the wonders of South Ari Atoll, home to whale sharks, manta rays, and pristine coral gardens.",
		StartingPrice: 2450,
		SpacesLeft:    2,
	},
	{
		ID:            3,
		Name:          "Deep South Adventure",
		Departure:     departure(2025, time.March, 11),
		Duration:      "10 Days / 11 Nights",
		Dives:         "24-28 Dives",
		Dates:         "Mar 11 - Mar 21",
		Description:   "Embark on an extended adventure to the pristine deep south atolls.",
		StartingPrice: 3299,
		SpacesLeft:    8,
	},
	{
		ID:            4,
		Name:          "Best of Maldives",
		Departure:     departure(2025, time.March, 4),
		Duration:      "14 Days / 15 Nights",
		Dives:         "30-35 Dives",
		Dates:         "Mar 4 - Mar 18",
		StartingPrice: 4599,
		SpacesLeft:    5,
	},
	{
		ID:            5,
		Name:          "North Male Atolls Classic",
		Popular:       true,
		Departure:     departure(2025, time.March, 28),
		Duration:      "7 Days / 6 Nights",
		Dives:         "18-20 Dives",
		Dates:         "Mar 28 - Apr 4",
		StartingPrice: 2199,
		SpacesLeft:    4,
	},
	{
		ID:            6,
		Name:          "Central Atolls Circuit",
		Departure:     departure(2025, time.April, 15),
		Duration:      "8 Days / 9 Nights",
		Dives:         "20-22 Dives",
		Dates:         "Apr 15 - Apr 23",
		StartingPrice: 2699,
		SpacesLeft:    7,
	},
	{
		ID:            7,
		Name:          "Whale Shark Special",
		Departure:     departure(2025, time.May, 6),
		Duration:      "6 Days / 7 Nights",
		Dives:         "14-16 Dives",
		Dates:         "May 6 - May 12",
		StartingPrice: 1899,
		SpacesLeft:    1,
	},
}

func init() {
	// Departures without a bespoke description get the generated one the
	// itinerary page falls back to.
	for i := range voyages {
		if voyages[i].Description == "" {
			voyages[i].Description = fmt.Sprintf(
				"Explore the stunning dive sites of %s, featuring pristine coral reefs, vibrant marine life, and unforgettable underwater experiences.",
				voyages[i].Name,
			)
		}
	}
}

// Voyages returns the full departure schedule.
func Voyages() []models.Voyage {
	return voyages
}

// VoyageByID looks a departure up by id.
func VoyageByID(id int64) (models.Voyage, error) {
	for _, v := range voyages {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Voyage{}, domain.NotFoundError{Resource: "voyage"}
}

// Voyage date filters offered by the availability list.
const (
	FilterAll     = "all"
	Filter30Days  = "30days"
	Filter3Months = "3months"
	Filter6Months = "6months"
	FilterFeb2025 = "feb2025"
	FilterMar2025 = "mar2025"
	FilterApr2025 = "apr2025"
	FilterMay2025 = "may2025"
	FilterCustom  = "custom"
)

// FilterVoyages applies the selected departure-date filter. For
// FilterCustom both from and to must be set; the range is inclusive.
func FilterVoyages(filter string, from, to *time.Time, now time.Time) ([]models.Voyage, error) {
	if filter == "" || filter == FilterAll {
		return voyages, nil
	}

	var lo, hi time.Time
	switch filter {
	case Filter30Days:
		lo, hi = now, now.AddDate(0, 1, 0)
	case Filter3Months:
		lo, hi = now, now.AddDate(0, 3, 0)
	case Filter6Months:
		lo, hi = now, now.AddDate(0, 6, 0)
	case FilterFeb2025:
		lo, hi = monthRange(2025, time.February)
	case FilterMar2025:
		lo, hi = monthRange(2025, time.March)
	case FilterApr2025:
		lo, hi = monthRange(2025, time.April)
	case FilterMay2025:
		lo, hi = monthRange(2025, time.May)
	case FilterCustom:
		if from == nil || to == nil {
			return nil, domain.ValidationError{Field: "filter", Msg: "custom range requires from and to dates"}
		}
		lo, hi = *from, *to
	default:
		return nil, domain.ValidationError{Field: "filter", Msg: "unknown filter " + filter}
	}

	out := make([]models.Voyage, 0, len(voyages))
	for _, v := range voyages {
		if !v.Departure.Before(lo) && !v.Departure.After(hi) {
			out = append(out, v)
		}
	}
	return out, nil
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	lo := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return lo, lo.AddDate(0, 1, 0).Add(-time.Nanosecond)
}
