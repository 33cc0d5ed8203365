package entities

import (
	"encoding/json"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// DateOnly is a calendar date without a time component, transmitted as an
// ISO-8601 date string (YYYY-MM-DD).
type DateOnly struct {
	time.Time
}

// NewDateOnly truncates t to its calendar date in UTC.
func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDateOnly parses a YYYY-MM-DD string.
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{t}, nil
}

func (d DateOnly) String() string {
	return d.Time.Format(dateOnlyLayout)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateOnlyLayout, str)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
