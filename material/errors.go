package material

import (
	"fmt"
)

// RangeError reports a wavelength outside the valid interval of the
// requested quantity. Callers may retry with a different wavelength.
type RangeError struct {
	// Quantity is "n" or "k".
	Quantity string
	Wavelength float64
	// Index is the position of the offending wavelength in a slice query,
	// or -1 for a scalar query.
	Index int
	Bounds Interval
}

func (e *RangeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("material: wavelength %g um is outside the valid "+
			"%s interval [%g, %g]", e.Wavelength, e.Quantity,
			e.Bounds.Min, e.Bounds.Max)
	}
	return fmt.Sprintf("material: wavelength %g um (element %d) is outside "+
		"the valid %s interval [%g, %g]", e.Wavelength, e.Index, e.Quantity,
		e.Bounds.Min, e.Bounds.Max)
}

// ConfigurationError reports a material definition that cannot be evaluated:
// an unknown formula, too few coefficients, a malformed table or an empty
// interval. Retrying with another wavelength will not help.
type ConfigurationError struct {
	Reason string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil { return "material: " + e.Reason }
	return fmt.Sprintf("material: %s: %v", e.Reason, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErr(err error, format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...), Err: err}
}
