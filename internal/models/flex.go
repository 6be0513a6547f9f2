package models

import (
	"encoding/json"
	"strconv"
)

// FlexFloat handles JSON values that may be a number, a numeric string,
// "N/A", an empty string, or null. Absent and unparseable values are kept
// distinct from zero so downstream stages can tell "no data" from "0".
type FlexFloat struct {
	Value float64
	Valid bool
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Value = 0
	f.Valid = false

	if string(data) == "null" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.Value = num
		f.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "N/A" || s == "NA" || s == "-" {
			return nil
		}
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f.Value = num
		f.Valid = true
		return nil
	}

	// Unexpected shapes (objects, arrays) read as unavailable.
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns the value as a nullable float, nil when unavailable.
func (f FlexFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// FlexOf wraps a plain float as a valid FlexFloat. Used in tests and
// fixtures.
func FlexOf(v float64) FlexFloat {
	return FlexFloat{Value: v, Valid: true}
}
