// Package types holds the lenient JSON shapes used at the upstream API boundary.
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ID is a record identifier that the upstream sends either as a number or as a string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes numeric ids back as numbers so the upstream sees what it sent.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date decodes the handful of date formats the upstream emits. Anything
// unparsable decodes to the zero time.
type Date struct {
	time.Time
}

// ParseDate parses s with the accepted layouts.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, true
		}
	}
	return Date{}, false
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil || s == nil {
		d.Time = time.Time{}
		return nil
	}
	parsed, _ := ParseDate(*s)
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(time.RFC3339))
}

// Quantity is a stock amount. Numeric strings and decimals are accepted,
// decimals are truncated; null and garbage decode to zero.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*q = 0
			return nil
		}
		data = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(int(f))
	return nil
}

func (q Quantity) Int() int { return int(q) }
