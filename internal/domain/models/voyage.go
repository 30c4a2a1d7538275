package models

import "time"

// Voyage is one scheduled departure of a dive itinerary.
type Voyage struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Popular       bool      `json:"popular"`
	Departure     time.Time `json:"departure"`
	Duration      string    `json:"duration"`
	Dives         string    `json:"dives"`
	Dates         string    `json:"dates"`
	Description   string    `json:"description"`
	StartingPrice int64     `json:"startingPrice"`
	SpacesLeft    int       `json:"spacesLeft"`
}

// FAQ is a question/answer pair shown on the marketing pages.
type FAQ struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DiveSite describes one featured dive location of an itinerary.
type DiveSite struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Depth      string `json:"depth"`
	Type       string `json:"type"`
}

// ItineraryDay is one day of the onboard schedule.
type ItineraryDay struct {
	Day         string `json:"day"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
