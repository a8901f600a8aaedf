package material

import (
	"errors"
	"fmt"
	"math"
)

var errEmptyInterval = errors.New("interval is empty")

// Interval is a closed wavelength interval in micrometers. The zero Interval
// means "not given".
type Interval struct {
	Min, Max float64
}

// IsZero is true for the unset interval.
func (iv Interval) IsZero() bool { return iv.Min == 0 && iv.Max == 0 }

// Contains reports whether Min <= wl <= Max. NaN is never contained.
func (iv Interval) Contains(wl float64) bool {
	return wl >= iv.Min && wl <= iv.Max
}

func (iv Interval) String() string {
	if iv.IsZero() { return "unset" }
	return fmt.Sprintf("[%g, %g]", iv.Min, iv.Max)
}

func (iv Interval) validate() error {
	if math.IsNaN(iv.Min) || math.IsNaN(iv.Max) ||
		math.IsInf(iv.Min, 0) || math.IsInf(iv.Max, 0) {
		return fmt.Errorf("interval %s is not finite", iv)
	} else if iv.Min > iv.Max {
		return fmt.Errorf("%w: min %g > max %g", errEmptyInterval, iv.Min, iv.Max)
	}
	return nil
}

// check returns a *RangeError for the first element of wls outside iv.
func (iv Interval) check(quantity string, wls []float64) error {
	for i, wl := range wls {
		if !iv.Contains(wl) {
			return &RangeError{
				Quantity: quantity, Wavelength: wl, Index: i, Bounds: iv,
			}
		}
	}
	return nil
}

// first returns the first interval which is set.
func first(ivs ...Interval) Interval {
	for _, iv := range ivs {
		if !iv.IsZero() { return iv }
	}
	return Interval{}
}

// within restricts a catalog interval to the span of a table. An unset catalog
// interval becomes the table span.
func within(catalog, span Interval) (Interval, error) {
	if catalog.IsZero() { return span, nil }

	out := Interval{math.Max(catalog.Min, span.Min),
		math.Min(catalog.Max, span.Max)}
	if out.Min > out.Max {
		return Interval{}, fmt.Errorf("%w: catalog interval %s does not "+
			"overlap table span %s", errEmptyInterval, catalog, span)
	}
	return out, nil
}
