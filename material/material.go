/*package material computes the complex refractive index n + ik of a single
material from its catalog entry and dataset.

The n and k paths are resolved independently when the Material is built:
a quantity covered by a table is interpolated from it, n is otherwise taken
from the dispersion formula, and k is otherwise zero. Every query is
checked against the valid interval of the quantity it asks for before any
value is computed.
*/
package material

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/rindex/dispersion"
	"github.com/phil-mansfield/rindex/math/calc"
	"github.com/phil-mansfield/rindex/math/interpolate"
)

// ErrGroupGrid is returned by GroupIndexAll for grids that are too short or
// not strictly increasing.
var ErrGroupGrid = errors.New(
	"material: group index needs at least 3 strictly increasing wavelengths",
)

// Source names where a quantity is read from.
type Source int

const (
	FromFormula Source = iota
	FromTable
	FromZero
)

func (s Source) String() string {
	switch s {
	case FromFormula: return "formula"
	case FromTable: return "table"
	case FromZero: return "zero"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

type path struct {
	quantity string
	bounds Interval
	source Source
	eval func(wl float64) float64
}

func (p *path) check(wl float64) error {
	if p.bounds.Contains(wl) { return nil }
	return &RangeError{
		Quantity: p.quantity, Wavelength: wl, Index: -1, Bounds: p.bounds,
	}
}

func zero(float64) float64 { return 0 }

type options struct {
	kind interpolate.Kind
}

// Option configures New.
type Option func(*options)

// WithInterpolation selects the spline used for tabulated quantities. The
// default is interpolate.NotAKnotKind.
func WithInterpolation(kind interpolate.Kind) Option {
	return func(o *options) { o.kind = kind }
}

// Material evaluates one catalog entry. It is immutable after New returns
// and safe for concurrent use.
type Material struct {
	entry Entry
	formula *dispersion.Evaluator
	n, k path
}

// New binds an entry to its dataset. All configuration problems are
// reported here as a *ConfigurationError.
func New(e Entry, ds Dataset, opts ...Option) (*Material, error) {
	o := options{kind: interpolate.NotAKnotKind}
	for _, opt := range opts { opt(&o) }

	if err := e.Validate(); err != nil { return nil, err }

	m := &Material{entry: e}

	if !e.Tabulated.HasN() {
		ev, err := dispersion.Select(e.Formula, ds.C)
		if err != nil {
			return nil, configErr(err, "formula %d", e.Formula)
		}
		m.formula = ev
	}

	var err error
	if m.n, err = newNPath(e, ds, m.formula, o.kind); err != nil {
		return nil, err
	}
	if m.k, err = newKPath(e, ds, m.n.bounds, o.kind); err != nil {
		return nil, err
	}
	return m, nil
}

func newNPath(
	e Entry, ds Dataset, ev *dispersion.Evaluator, kind interpolate.Kind,
) (path, error) {
	p := path{quantity: "n"}

	if e.Tabulated.HasN() {
		sp, span, err := newTable("n", ds.WlN, ds.N, kind)
		if err != nil { return path{}, err }
		if p.bounds, err = within(first(e.NRange, e.Range), span); err != nil {
			return path{}, configErr(err, "n interval")
		}
		p.source, p.eval = FromTable, sp.Eval
		return p, nil
	}

	p.bounds = first(e.NRange, e.Range)
	if p.bounds.IsZero() {
		return path{}, configErr(nil, "formula %d has no valid wavelength "+
			"interval", e.Formula)
	}
	p.source, p.eval = FromFormula, ev.N
	return p, nil
}

func newKPath(
	e Entry, ds Dataset, nBounds Interval, kind interpolate.Kind,
) (path, error) {
	p := path{quantity: "k"}

	if e.Tabulated.HasK() {
		sp, span, err := newTable("k", ds.WlK, ds.K, kind)
		if err != nil { return path{}, err }
		if p.bounds, err = within(first(e.KRange, e.Range), span); err != nil {
			return path{}, configErr(err, "k interval")
		}
		p.source, p.eval = FromTable, sp.Eval
		return p, nil
	}

	p.bounds = first(e.KRange, e.Range, nBounds)
	p.source, p.eval = FromZero, zero
	return p, nil
}

// Entry returns the catalog entry the material was built from.
func (m *Material) Entry() Entry { return m.entry }

// Formula returns the dispersion formula supplying n, if there is one.
func (m *Material) Formula() (dispersion.Formula, bool) {
	if m.formula == nil { return dispersion.Formula{}, false }
	return m.formula.Formula(), true
}

// NBounds returns the interval n may be evaluated over.
func (m *Material) NBounds() Interval { return m.n.bounds }

// KBounds returns the interval k may be evaluated over.
func (m *Material) KBounds() Interval { return m.k.bounds }

// NSource returns where n is read from.
func (m *Material) NSource() Source { return m.n.source }

// KSource returns where k is read from.
func (m *Material) KSource() Source { return m.k.source }

// N returns the real part of the refractive index at wl.
func (m *Material) N(wl float64) (float64, error) {
	if err := m.n.check(wl); err != nil { return 0, err }
	return m.n.eval(wl), nil
}

// K returns the extinction coefficient at wl.
func (m *Material) K(wl float64) (float64, error) {
	if err := m.k.check(wl); err != nil { return 0, err }
	return m.k.eval(wl), nil
}

// NK returns n and k at wl. Both intervals are checked before either value
// is computed.
func (m *Material) NK(wl float64) (n, k float64, err error) {
	if err = m.n.check(wl); err != nil { return 0, 0, err }
	if err = m.k.check(wl); err != nil { return 0, 0, err }
	return m.n.eval(wl), m.k.eval(wl), nil
}

// NAll evaluates n at every wavelength in wls. If any wavelength is out of
// range nothing is computed and the output buffer is left untouched. An
// optional output slice of the same length may be supplied.
func (m *Material) NAll(wls []float64, out ...[]float64) ([]float64, error) {
	return m.n.evalAll(wls, out)
}

// KAll evaluates k at every wavelength in wls, following the rules of NAll.
func (m *Material) KAll(wls []float64, out ...[]float64) ([]float64, error) {
	return m.k.evalAll(wls, out)
}

// NKAll evaluates n and k at every wavelength in wls. Both intervals are
// checked for every element before anything is computed.
func (m *Material) NKAll(wls []float64) (ns, ks []float64, err error) {
	if err = m.n.bounds.check("n", wls); err != nil {
		return nil, nil, err
	}
	if err = m.k.bounds.check("k", wls); err != nil {
		return nil, nil, err
	}

	ns, ks = make([]float64, len(wls)), make([]float64, len(wls))
	for i, wl := range wls {
		ns[i], ks[i] = m.n.eval(wl), m.k.eval(wl)
	}
	return ns, ks, nil
}

// Eps returns the relative permittivity (n + ik)^2 at wl.
func (m *Material) Eps(wl float64) (complex128, error) {
	n, k, err := m.NK(wl)
	if err != nil { return 0, err }
	nk := complex(n, k)
	return nk*nk, nil
}

// EpsAll returns the relative permittivity at every wavelength in wls.
func (m *Material) EpsAll(wls []float64) ([]complex128, error) {
	ns, ks, err := m.NKAll(wls)
	if err != nil { return nil, err }

	eps := make([]complex128, len(wls))
	for i := range eps {
		nk := complex(ns[i], ks[i])
		eps[i] = nk*nk
	}
	return eps, nil
}

// GroupIndexAll returns n - wl dn/dwl over a grid of wavelengths. dn/dwl is
// a finite difference over the grid itself, fourth order for grids of five
// or more points and second order otherwise.
func (m *Material) GroupIndexAll(wls []float64) ([]float64, error) {
	if len(wls) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrGroupGrid, len(wls))
	}
	for i := 1; i < len(wls); i++ {
		if !(wls[i] > wls[i-1]) {
			return nil, fmt.Errorf("%w: wls[%d] = %g, wls[%d] = %g",
				ErrGroupGrid, i-1, wls[i-1], i, wls[i])
		}
	}

	ns, err := m.NAll(wls)
	if err != nil { return nil, err }

	order := 2
	if len(wls) >= 5 { order = 4 }
	// The derivative is written into the output and replaced in place.
	ng := make([]float64, len(wls))
	if _, err = calc.Deriv(wls, ns, order, calc.Out(ng)); err != nil {
		return nil, err
	}
	for i := range ng { ng[i] = ns[i] - wls[i]*ng[i] }
	return ng, nil
}

func (p *path) evalAll(wls []float64, out [][]float64) ([]float64, error) {
	if err := p.bounds.check(p.quantity, wls); err != nil {
		return nil, err
	}

	var res []float64
	if len(out) == 0 {
		res = make([]float64, len(wls))
	} else {
		res = out[0]
		if len(res) != len(wls) {
			panic(fmt.Sprintf("Output slice has length %d, but %d "+
				"wavelengths were given.", len(res), len(wls)))
		}
	}

	for i, wl := range wls { res[i] = p.eval(wl) }
	return res, nil
}
