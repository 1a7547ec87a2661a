package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a one-way hash, never plaintext. Incoming
	// payloads carry the plaintext in this field; it is hashed by the
	// service layer before the entity ever reaches the store.
	Password string `json:"password,omitempty"`

	// RoleID is the foreign key to the user's single role.
	RoleID int64 `json:"roleId,omitempty"`

	// Role is the resolved role reference. Populated by the store at
	// read time; nil when the user was not read through a join.
	Role *Role `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ToDTO projects the user into its transfer representation.
// The password hash is deliberately absent from the result.
func (u User) ToDTO() UserDTO {
	dto := UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
	}
	if u.Role != nil {
		dto.Role = u.Role.Name
	}
	return dto
}

// UserDTO is the outward-facing representation of a User.
// It carries the flattened role name and never the password.
type UserDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Role      string `json:"role,omitempty"`
}
