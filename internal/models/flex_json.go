package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber accepts a JSON number, a numeric string, null, or an empty
// string. Dashboard forms and the screenshot-extraction path both serialize
// numbers as quoted strings, so the decoder must not reject them outright;
// a non-numeric value is retained so validation can report it as a collected
// message instead of failing the whole submission decode.
type FlexNumber struct {
	Raw   string
	Value float64
	Set   bool // present and non-null
	Valid bool // parsed as a number
}

// Num is a convenience constructor used by tests and the seeder.
func Num(v float64) FlexNumber {
	return FlexNumber{Raw: strconv.FormatFloat(v, 'f', -1, 64), Value: v, Set: true, Valid: true}
}

// Int returns the value truncated to int. Only meaningful when Valid.
func (n FlexNumber) Int() int {
	return int(n.Value)
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = FlexNumber{}
		return nil
	}

	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			// Empty form field, same as absent
			*n = FlexNumber{}
			return nil
		}
		n.Raw = str
		n.Set = true
		if v, err := strconv.ParseFloat(str, 64); err == nil {
			n.Value = v
			n.Valid = true
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		// Malformed token (e.g. bare word); keep it for validation to flag
		n.Raw = s
		n.Set = true
		n.Valid = false
		return nil
	}
	n.Raw = s
	n.Value = v
	n.Set = true
	n.Valid = true
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	if !n.Valid {
		return json.Marshal(n.Raw)
	}
	return json.Marshal(n.Value)
}
