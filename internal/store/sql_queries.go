// SPDX-License-Identifier: Apache-2.0

package store

const (
	createUser = `INSERT INTO users (first_name, last_name, username, password, role_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`

	findUserBase = `SELECT u.id, u.first_name, u.last_name, u.username, u.password, u.role_id, r.name
    FROM users u
    JOIN roles r ON r.id = u.role_id`

	findUserByID       = findUserBase + ` WHERE u.id = $1;`
	findUserByUsername = findUserBase + ` WHERE u.username = $1;`
	findAllUsers       = findUserBase + ` ORDER BY u.id;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createRole = `INSERT INTO roles (name)
    VALUES ($1)
    RETURNING id;`

	findRoleByID   = `SELECT id, name FROM roles WHERE id = $1;`
	findRoleByName = `SELECT id, name FROM roles WHERE name = $1;`
	findAllRoles   = `SELECT id, name FROM roles ORDER BY id;`
	deleteRole     = `DELETE FROM roles WHERE id = $1;`

	createGuide = `INSERT INTO guides (name)
    VALUES ($1)
    RETURNING id;`

	findGuideByID = `SELECT id, name FROM guides WHERE id = $1;`
	findAllGuides = `SELECT id, name FROM guides ORDER BY id;`
	deleteGuide   = `DELETE FROM guides WHERE id = $1;`

	createTour = `INSERT INTO tours (price, difficulty, start, finish)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	findTourByID = `SELECT id, price, difficulty, start, finish FROM tours WHERE id = $1;`
	findAllTours = `SELECT id, price, difficulty, start, finish FROM tours ORDER BY id;`
	deleteTour   = `DELETE FROM tours WHERE id = $1;`

	createBooking = `INSERT INTO bookings (tour_id, user_id, guide_id)
    VALUES ($1, $2, $3)
    RETURNING id;`

	deleteBooking = `DELETE FROM bookings WHERE id = $1;`
)

// bookingColumns is the column list shared by every booking read. The
// booking row is hydrated with its referenced tour, user (and the user's
// role) and guide in a single round trip; the guide side is nullable.
var bookingColumns = []string{
	"b.id", "b.tour_id", "b.user_id", "b.guide_id",
	"t.price", "t.difficulty", "t.start", "t.finish",
	"u.first_name", "u.last_name", "u.username", "u.role_id", "r.name",
	"g.name",
}

const bookingJoins = `bookings b
    JOIN tours t ON t.id = b.tour_id
    JOIN users u ON u.id = b.user_id
    JOIN roles r ON r.id = u.role_id
    LEFT JOIN guides g ON g.id = b.guide_id`
