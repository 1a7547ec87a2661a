package models

// Tour represents a bookable tour offering.
//
// Start and Finish are calendar dates; the system deliberately does not
// enforce Start <= Finish, matching the observed behavior of the API.
type Tour struct {
	ID         int64  `json:"id"`
	Price      int64  `json:"price"`
	Difficulty string `json:"difficulty"`
	Start      Date   `json:"start"`
	Finish     Date   `json:"finish"`
}

// TableName returns the name of the database table
// associated with the Tour model.
func (t Tour) TableName() string {
	return "tours"
}

// ToDTO projects the tour into its transfer representation.
func (t Tour) ToDTO() TourDTO {
	return TourDTO{
		ID:         t.ID,
		Price:      t.Price,
		Difficulty: t.Difficulty,
		Start:      t.Start,
		Finish:     t.Finish,
	}
}

// TourDTO is the outward-facing representation of a Tour.
type TourDTO struct {
	ID         int64  `json:"id"`
	Price      int64  `json:"price"`
	Difficulty string `json:"difficulty"`
	Start      Date   `json:"start"`
	Finish     Date   `json:"finish"`
}
