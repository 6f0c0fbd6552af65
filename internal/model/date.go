package model

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the wire formats the backend emits for dates. Listings
// carry plain calendar dates; dashboard and detail payloads carry full
// timestamps.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Date is a calendar date as exchanged with the backend. It marshals as
// YYYY-MM-DD and accepts timestamp forms on the way in.
type Date struct {
	time.Time
}

// NewDate builds a Date from a point in time, truncated to the day.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	return NewDate(time.Now())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format("2006-01-02"))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unrecognized date %q", s)
}

// String returns the date in its wire form.
func (d Date) String() string {
	return d.Format("2006-01-02")
}
