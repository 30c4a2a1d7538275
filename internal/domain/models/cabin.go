package models

// Cabin is a bookable accommodation unit aboard the vessel. The catalog is
// immutable and loaded once at startup.
type Cabin struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CabinsLeft  int    `json:"cabinsLeft"`
	Size        string `json:"size"`
	Capacity    string `json:"capacity"`
	BedType     string `json:"bedType"`
	Bathroom    string `json:"bathroom"`

	// BasePrice is the per-person price for the whole trip, in whole EUR.
	BasePrice int64 `json:"basePrice"`
	// NightlyRate is the per-night display rate, in whole USD.
	NightlyRate int64 `json:"nightlyRate"`

	Features  []string `json:"features"`
	Amenities []string `json:"amenities"`
}
