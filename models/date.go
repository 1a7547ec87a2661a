package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It wraps time.Time to provide ISO "YYYY-MM-DD" JSON serialization and
// database Scan/Value support, mirroring how tour start and finish dates
// travel over the API and are stored in DATE columns.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON parses a JSON string in "YYYY-MM-DD" format.
// A JSON null leaves the date at its zero value.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*d = Date{}
		return nil
	}

	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return fmt.Errorf("error parsing date %q: %w", *s, err)
	}

	d.Time = t
	return nil
}

// MarshalJSON serializes the date as a "YYYY-MM-DD" JSON string,
// or null for the zero value.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("error scanning date %q: %w", v, err)
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("unsupported date source type %T", src)
	}
}

// Value implements driver.Valuer for DATE columns.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
