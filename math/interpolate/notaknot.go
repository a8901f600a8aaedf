package interpolate

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// minNotAKnot is the smallest table that can carry the not-a-knot conditions.
const minNotAKnot = 4

// NotAKnot is a cubic spline whose third derivative is continuous at the
// second and penultimate table points. This is the spline SciPy builds for
// interp1d(kind="cubic"). Tables shorter than four points fall back to a
// natural spline.
type NotAKnot struct {
	xs, ys []float64
	fit *interp.NotAKnotCubic
	short *Spline
}

// NewNotAKnot fits a not-a-knot spline to a table. The input slices are
// copied.
func NewNotAKnot(xs, ys []float64) (*NotAKnot, error) {
	if err := checkTable(xs, ys); err != nil { return nil, err }

	nak := &NotAKnot{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}

	if len(xs) < minNotAKnot {
		sp, err := NewSpline(nak.xs, nak.ys)
		if err != nil { return nil, err }
		nak.short = sp
		return nak, nil
	}

	nak.fit = new(interp.NotAKnotCubic)
	if err := nak.fit.Fit(nak.xs, nak.ys); err != nil {
		return nil, fmt.Errorf("interpolate: not-a-knot fit: %w", err)
	}
	return nak, nil
}

// Eval computes the value of the spline at x, which must lie inside the
// table.
func (nak *NotAKnot) Eval(x float64) float64 {
	if nak.short != nil { return nak.short.Eval(x) }

	n := len(nak.xs)
	if x == nak.xs[0] { return nak.ys[0] }
	if x == nak.xs[n-1] { return nak.ys[n-1] }
	if !(x > nak.xs[0] && x < nak.xs[n-1]) {
		panic(fmt.Sprintf("Point %g given to NotAKnot.Eval() out of "+
			"bounds [%g, %g].", x, nak.xs[0], nak.xs[n-1]))
	}
	return nak.fit.Predict(x)
}

// EvalAll evaluates the spline at every point in xs.
func (nak *NotAKnot) EvalAll(xs []float64, out ...[]float64) []float64 {
	res := outBuffer(len(xs), out)
	for i := range xs { res[i] = nak.Eval(xs[i]) }
	return res
}

// Span returns the interval covered by the table.
func (nak *NotAKnot) Span() (lo, hi float64) {
	return nak.xs[0], nak.xs[len(nak.xs)-1]
}
