package models

// Role represents an authority level that can be granted to users.
// Exactly two roles are provisioned by the migrations: "ROLE_ADMIN"
// and "ROLE_USER". The name is unique at the database level.
type Role struct {
	// ID is the internal unique identifier of the role.
	ID int64 `json:"id"`

	// Name is the unique role name, e.g. "ROLE_ADMIN".
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// ToDTO projects the role into its transfer representation.
func (r Role) ToDTO() RoleDTO {
	return RoleDTO{
		ID:   r.ID,
		Name: r.Name,
	}
}

// RoleDTO is the outward-facing representation of a Role.
type RoleDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
