package schema

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Int is an integer that decodes from a JSON number or a numeric string.
// Last.fm serializes counts, totals and page numbers as strings.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Int) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	*n = Int(v)
	return nil
}

// Value returns the native int.
func (n Int) Value() int {
	return int(n)
}

// Bool decodes from a JSON bool, "0"/"1", or "true"/"false".
type Bool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bool) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "", "null", "0", "false":
		*b = false
	case "1", "true":
		*b = true
	default:
		return fmt.Errorf("expected boolean, got %s", data)
	}
	return nil
}

// Value returns the native bool.
func (b Bool) Value() bool {
	return bool(b)
}

// UnixTime decodes a unix-seconds timestamp from a JSON number or string.
type UnixTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("expected unix timestamp, got %s", data)
	}
	t.Time = time.Unix(secs, 0).UTC()
	return nil
}
