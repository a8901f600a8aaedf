/*package interpolate implements 1D cubic interpolators over tabulated data.
*/
package interpolate

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrTooFewPoints is returned for tables with fewer than two points.
	ErrTooFewPoints = errors.New("interpolate: table needs at least 2 points")
	// ErrLengthMismatch is returned when len(xs) != len(ys).
	ErrLengthMismatch = errors.New("interpolate: len(xs) != len(ys)")
	// ErrUnsorted is returned when xs is not strictly increasing.
	ErrUnsorted = errors.New("interpolate: xs not strictly increasing")
	// ErrNonFinite is returned when a table contains NaN or Inf.
	ErrNonFinite = errors.New("interpolate: table contains NaN or Inf")
	// ErrUnknownKind is returned by ParseKind and New.
	ErrUnknownKind = errors.New("interpolate: unknown interpolation kind")
)

// Interpolator is a 1D interpolator. Implementations in this package hold no
// caches and are safe for concurrent use.
type Interpolator interface {
	// Eval evaluates the interpolator at x. x must lie inside the table.
	Eval(x float64) float64
	// EvalAll evaluates a sequeunce of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Span returns the first and last x value of the table.
	Span() (lo, hi float64)
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &NotAKnot{}
)

// Kind selects the boundary treatment of the cubic spline.
type Kind int

const (
	// NotAKnotKind requires the third derivative to be continuous at the
	// second and penultimate points.
	NotAKnotKind Kind = iota
	// NaturalKind pins the second derivative to zero at both ends.
	NaturalKind
)

func (k Kind) String() string {
	switch k {
	case NotAKnotKind: return "notaknot"
	case NaturalKind: return "natural"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a name written by Kind.String back into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "notaknot", "not-a-knot", "":
		return NotAKnotKind, nil
	case "natural":
		return NaturalKind, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New fits an interpolator of the given kind to a table.
func New(kind Kind, xs, ys []float64) (Interpolator, error) {
	switch kind {
	case NotAKnotKind:
		return NewNotAKnot(xs, ys)
	case NaturalKind:
		return NewSpline(xs, ys)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

func checkTable(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	} else if len(xs) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}

	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) ||
			math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fmt.Errorf("%w: point %d", ErrNonFinite, i)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return fmt.Errorf("%w: xs[%d] = %g, xs[%d] = %g",
				ErrUnsorted, i-1, xs[i-1], i, xs[i])
		}
	}
	return nil
}

func outBuffer(n int, out [][]float64) []float64 {
	if len(out) == 0 { return make([]float64, n) }
	if len(out[0]) != n {
		panic(fmt.Sprintf("Output slice has length %d, but %d points "+
			"were given.", len(out[0]), n))
	}
	return out[0]
}
