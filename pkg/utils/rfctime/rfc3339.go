// Package rfctime provides a time.Time variant which is written as RFC3339 date-time.
package rfctime

import (
	"bytes"
	"encoding/json"
	"time"
)

// Format for writing. The offset is always numeric ("+09:00"), never "Z".
const RFC3339DateTimeFormat string = "2006-01-02T15:04:05.999-07:00"

// Format for reading. "Z" is accepted.
const RFC3339DateTimeFormatZ string = time.RFC3339Nano

type RFC3339 time.Time

func (t RFC3339) Time() time.Time {
	return time.Time(t)
}

// Equal tells both point the same instant. Two nils are equal.
func (t *RFC3339) Equal(other *RFC3339) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	return t.Time().Equal(other.Time())
}

func (t RFC3339) String() string {
	return time.Time(t).Format(RFC3339DateTimeFormat)
}

// ParseRFC3339DateTime parses s as RFC3339 date-time.
func ParseRFC3339DateTime(s string) (RFC3339, error) {
	t, err := time.Parse(RFC3339DateTimeFormatZ, s)
	if err != nil {
		return RFC3339{}, err
	}
	return RFC3339(t), nil
}

func (t RFC3339) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *RFC3339) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRFC3339DateTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Ref converts a *time.Time into *RFC3339, keeping nil.
func Ref(t *time.Time) *RFC3339 {
	if t == nil {
		return nil
	}
	r := RFC3339(*t)
	return &r
}
