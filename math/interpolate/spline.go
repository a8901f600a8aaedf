package interpolate

import (
	"fmt"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline represents a 1D natural cubic spline which can be used to
// interpolate between points. A Spline never changes after NewSpline returns,
// so a single Spline may be evaluated from many goroutines.
type Spline struct {
	xs, ys, y2s []float64
	coeffs []splineCoeff
	s searcher
}

// NewSpline creates a natural spline based off a table of x and y values.
// The x values must be finite and strictly increasing and there must be at
// least two points. The input slices are copied.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if err := checkTable(xs, ys); err != nil { return nil, err }

	sp := new(Spline)
	sp.xs = append([]float64(nil), xs...)
	sp.ys = append([]float64(nil), ys...)
	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)
	sp.s.init(sp.xs)

	sp.calcY2s()
	sp.calcCoeffs()

	return sp, nil
}

// Eval computes the value of the spline at the given point.
//
// x must be within the range of x values given to NewSpline().
func (sp *Spline) Eval(x float64) float64 {
	if x == sp.xs[0] { return sp.ys[0] }
	if x == sp.xs[len(sp.xs)-1] { return sp.ys[len(sp.ys)-1] }

	i := sp.s.search(x)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	return a*dx*dx*dx + b*dx*dx + c*dx + d
}

// EvalAll evaluates the spline at every point in xs. An optional output
// slice may be given to avoid an allocation.
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	res := outBuffer(len(xs), out)
	for i := range xs { res[i] = sp.Eval(xs[i]) }
	return res
}

// Span returns the interval covered by the table.
func (sp *Spline) Span() (lo, hi float64) {
	return sp.xs[0], sp.xs[len(sp.xs)-1]
}

// calcY2s computes the second derivative at every point in the table. The
// boundaries are pinned to zero.
func (sp *Spline) calcY2s() {
	n := len(sp.xs)
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n == 2 { return }

	// These arrays do not escape to the heap.
	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	triDiagAt(as, bs, cs, rs, sp.y2s[1: n-1])
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range sp.coeffs {
		dx := xs[i+1] - xs[i]
		coeffs[i].a = (-y2s[i]/6 + y2s[i+1]/6) / dx
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1] - ys[i])/dx + dx*(-y2s[i]/3 - y2s[i+1]/6)
		coeffs[i].d = ys[i]
	}
}

// triDiagAt solves the system of equations
//
// | b0 c0 ..    |   | out0 |   | r0 |
// | a1 b1 c1 .. |   | out1 |   | r1 |
// | ..          | * | ..   | = | .. |
// | ..    an bn |   | outn |   | rn |
//
// For out0 .. outn in place in the given slice. a0 and cn are never read.
func triDiagAt(as, bs, cs, rs, out []float64) {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		panic(fmt.Sprintf("Lengths of arguments to triDiagAt() are " +
			"unequal: %d, %d, %d, %d, %d.",
			len(as), len(bs), len(cs), len(rs), len(out)))
	}
	if len(out) == 0 { return }

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		panic("triDiagAt() cannot solve given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			panic("triDiagAt() cannot solve given system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}

// triDiag solves the same system as triDiagAt, but allocates the output.
func triDiag(as, bs, cs, rs []float64) []float64 {
	us := make([]float64, len(as))
	triDiagAt(as, bs, cs, rs, us)
	return us
}
