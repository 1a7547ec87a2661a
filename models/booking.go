package models

// Booking ties exactly one tour, one user and one guide together.
//
// The booking holds weak references by id: the referenced entities are
// resolved at read time by the store, and deleting a referenced tour,
// user or guide leaves referential integrity to the database. A booking
// carries no attributes of its own beyond the reference triple, and two
// bookings with the same triple are indistinguishable by value.
type Booking struct {
	// ID is the internal unique identifier of the booking.
	ID int64 `json:"id"`

	// TourID references the booked tour.
	TourID int64 `json:"tourId"`

	// UserID references the user the booking belongs to. On creation
	// this is always the authenticated principal's identity, never a
	// client-supplied value.
	UserID int64 `json:"userId"`

	// GuideID references the serving guide. Nil when no guide is
	// attached; such bookings never match an affirmative guide filter.
	GuideID *int64 `json:"guideId,omitempty"`

	// Tour, User and Guide are the resolved references, populated by
	// the store when the booking is read through a join.
	Tour  *Tour  `json:"-"`
	User  *User  `json:"-"`
	Guide *Guide `json:"-"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// Equal reports whether two bookings reference the same
// (tour, user, guide) triple. Identity is not part of booking equality.
func (b Booking) Equal(other Booking) bool {
	if b.TourID != other.TourID || b.UserID != other.UserID {
		return false
	}
	if (b.GuideID == nil) != (other.GuideID == nil) {
		return false
	}
	return b.GuideID == nil || *b.GuideID == *other.GuideID
}

// ToDTO projects the booking and its resolved references into the
// transfer representation. Unresolved references yield zero DTOs so the
// method is safe to call on partially hydrated bookings.
func (b Booking) ToDTO() BookingDTO {
	dto := BookingDTO{ID: b.ID}
	if b.Tour != nil {
		dto.Tour = b.Tour.ToDTO()
	}
	if b.User != nil {
		dto.User = b.User.ToDTO()
	}
	if b.Guide != nil {
		guide := b.Guide.ToDTO()
		dto.Guide = &guide
	}
	return dto
}

// BookingDTO is the outward-facing representation of a Booking with the
// referenced entities embedded.
type BookingDTO struct {
	ID    int64     `json:"id"`
	Tour  TourDTO   `json:"tour"`
	User  UserDTO   `json:"user"`
	Guide *GuideDTO `json:"guide,omitempty"`
}
