package models

// Guide represents a tour guide that can be assigned to bookings.
type Guide struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Guide model.
func (g Guide) TableName() string {
	return "guides"
}

// ToDTO projects the guide into its transfer representation.
func (g Guide) ToDTO() GuideDTO {
	return GuideDTO{
		ID:   g.ID,
		Name: g.Name,
	}
}

// GuideDTO is the outward-facing representation of a Guide.
type GuideDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
