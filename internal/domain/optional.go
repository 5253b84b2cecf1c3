package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

var jsonNull = []byte("null")

// OptionalTime is a timestamp that may be absent from a payload or explicitly
// cleared. Set reports that the key was present, Valid that it carried a value.
// JSON null and "" both clear.
type OptionalTime struct {
	Time  time.Time
	Valid bool
	Set   bool
}

// UnmarshalJSON accepts null, "" or an RFC 3339 string.
func (t *OptionalTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) || bytes.Equal(data, []byte(`""`)) {
		*t = OptionalTime{Set: true}
		return nil
	}
	var parsed time.Time
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*t = OptionalTime{Time: parsed, Valid: true, Set: true}
	return nil
}

// MarshalJSON writes null when absent.
func (t OptionalTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return jsonNull, nil
	}
	return json.Marshal(t.Time)
}

// Ptr returns nil when absent or cleared.
func (t OptionalTime) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// At builds a present OptionalTime.
func At(ts time.Time) OptionalTime {
	return OptionalTime{Time: ts, Valid: true, Set: true}
}

// ClearedTime is an OptionalTime sent as null.
func ClearedTime() OptionalTime {
	return OptionalTime{Set: true}
}

// OptionalString is a text value that may be absent from a payload or
// explicitly cleared with null. An empty string is a value.
type OptionalString struct {
	String string
	Valid  bool
	Set    bool
}

// UnmarshalJSON accepts null or a string.
func (s *OptionalString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*s = OptionalString{Set: true}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = OptionalString{String: v, Valid: true, Set: true}
	return nil
}

// MarshalJSON writes null when absent.
func (s OptionalString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return jsonNull, nil
	}
	return json.Marshal(s.String)
}

// Ptr returns nil when absent or cleared.
func (s OptionalString) Ptr() *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// Text builds a present OptionalString.
func Text(v string) OptionalString {
	return OptionalString{String: v, Valid: true, Set: true}
}

// ClearedText is an OptionalString sent as null.
func ClearedText() OptionalString {
	return OptionalString{Set: true}
}
