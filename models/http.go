package models

// RegistrationRequest is the payload of POST /register.
type RegistrationRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// AuthRequest is the payload of POST /auth.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BookingRequest is the payload of booking mutations.
//
// On create only TourID is honored: the user is taken from the
// authenticated principal and the guide is assigned by the server.
// On edit the full reference triple replaces the stored one.
type BookingRequest struct {
	TourID  int64  `json:"tourId"`
	UserID  int64  `json:"userId"`
	GuideID *int64 `json:"guideId"`
}

// ErrorResponse is the uniform error body shape of the API.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
