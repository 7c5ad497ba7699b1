package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// NotAvailable is how a missing Stat is displayed and serialized
const NotAvailable = "N/A"

// Stat is a derived number that may be unavailable.
// The zero value is the "no data" sentinel, which is distinct from 0.
type Stat struct {
	value float64
	valid bool
}

// NoData is the "no data" sentinel
var NoData = Stat{}

// Value wraps a computed number
func Value(v float64) Stat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NoData
	}
	return Stat{value: v, valid: true}
}

// Valid reports whether the stat holds a number
func (s Stat) Valid() bool {
	return s.valid
}

// Float64 returns the number and whether it is available
func (s Stat) Float64() (float64, bool) {
	return s.value, s.valid
}

// Format renders the stat with a fixed number of decimals, or N/A
func (s Stat) Format(decimals int) string {
	if !s.valid {
		return NotAvailable
	}
	return strconv.FormatFloat(s.value, 'f', decimals, 64)
}

func (s Stat) String() string {
	if !s.valid {
		return NotAvailable
	}
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}

// MarshalJSON renders the sentinel as "N/A" and numbers as JSON numbers
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.valid {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON accepts a number or the "N/A" sentinel
func (s *Stat) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*s = Value(v)
		return nil
	}
	*s = NoData
	return nil
}

// MarshalYAML mirrors MarshalJSON
func (s Stat) MarshalYAML() (interface{}, error) {
	if !s.valid {
		return NotAvailable, nil
	}
	return s.value, nil
}
