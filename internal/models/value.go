// Package models defines the value objects for the valuation pipeline
package models

import (
	"errors"
	"math"
)

// ErrDataUnavailable is the single fatal error of the pipeline: the provider
// returned no usable identity data (ticker or current price) for the request.
// Every other gap propagates as a nil field, never as an error.
var ErrDataUnavailable = errors.New("no usable data for ticker")

// Numeric fields throughout the pipeline are *float64: nil means the value is
// unavailable, which is distinct from zero. Zero is a legal financial value.

// Float returns a pointer to v. Used when building snapshots and fixtures.
func Float(v float64) *float64 {
	return &v
}

// Avail reports whether every given value is present.
func Avail(vs ...*float64) bool {
	for _, v := range vs {
		if v == nil {
			return false
		}
	}
	return true
}

// Val returns the value of v, or 0 when v is unavailable. Callers must have
// checked availability first; Val exists to keep formula bodies readable.
func Val(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Ratio divides num by den, returning nil when either operand is unavailable
// or the denominator is zero.
func Ratio(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	return Float(*num / *den)
}

// Scale multiplies v by factor, propagating unavailability.
func Scale(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v * factor)
}

// Round2 rounds v to two decimal places, propagating unavailability.
func Round2(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(math.Round(*v*100) / 100)
}

// Round1 rounds v to one decimal place, propagating unavailability.
func Round1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(math.Round(*v*10) / 10)
}
