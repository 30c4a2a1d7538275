package catalog

import (
	"bluevoyager/internal/domain"
	"bluevoyager/internal/domain/models"
)

// The cabin catalog is fixed at startup and never mutated; treat everything
// returned from this package as read-only.
var cabins = []models.Cabin{
	{
		ID:          "standard",
		Name:        "Ocean View Cabin",
		Description: "Comfortable and well-appointed cabins perfect for divers who want quality accommodation at great value.",
		Image:       "/cabin1.png",
		CabinsLeft:  4,
		Size:        "12 - 14 m²",
		Capacity:    "2 guests",
		BedType:     "Twin or Double",
		Bathroom:    "Private",
		BasePrice:   2199,
		NightlyRate: 199,
		Features: []string{
			"Twin beds or double bed configuration",
			"Individual climate control air conditioning",
			"Adjustable reading lights",
			"Daily housekeeping service",
			"Emergency communication system",
			"Private bathroom with shower",
			"Secure storage lockers for valuables",
			"Complimentary toiletries",
			"Power outlets and USB charging ports",
		},
		Amenities: []string{
			"Air conditioning", "Private bathroom", "Storage space", "Porthole window", "Daily housekeeping",
		},
	},
	{
		ID:          "deluxe",
		Name:        "Deluxe Stateroom",
		Description: "Spacious cabins with premium amenities and larger windows for natural light and stunning ocean views.",
		Image:       "/cabin2.png",
		CabinsLeft:  2,
		Size:        "15 - 20 m²",
		Capacity:    "2 guests",
		BedType:     "Queen",
		Bathroom:    "Premium",
		BasePrice:   2549,
		NightlyRate: 299,
		Features: []string{
			"Queen bed",
			"Premium bathroom",
			"Ocean view porthole",
			"Mini fridge",
			"Premium linens",
			"Bathrobes",
		},
		Amenities: []string{
			"Air conditioning", "Premium bathroom", "Large panoramic windows", "Desk & seating area", "Mini fridge", "Bathrobe & slippers", "Complimentary water",
		},
	},
	{
		ID:          "master",
		Name:        "Master Ocean Suite",
		Description: "Our most luxurious accommodation with separate living space, premium amenities, and exclusive perks.",
		Image:       "/cabin3.png",
		CabinsLeft:  3,
		Size:        "22 - 25 m²",
		Capacity:    "2-3 guests",
		BedType:     "King",
		Bathroom:    "Ensuite",
		BasePrice:   2949,
		NightlyRate: 499,
		Features: []string{
			"King bed",
			"Ensuite bathroom",
			"Private deck access",
			"Premium amenities",
			"Extra space",
			"Complimentary drinks",
		},
		Amenities: []string{
			"Air conditioning", "Luxury bathroom with bathtub", "Panoramic windows", "Separate living area", "Mini bar (stocked)", "Premium toiletries", "Daily turndown service", "Priority dive boarding",
		},
	},
}

// Cabins returns the full cabin catalog.
func Cabins() []models.Cabin {
	return cabins
}

// CabinByID looks a cabin up by its catalog id.
func CabinByID(id string) (models.Cabin, error) {
	for _, c := range cabins {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Cabin{}, domain.NotFoundError{Resource: "cabin"}
}
