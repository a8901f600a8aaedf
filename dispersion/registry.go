/*package dispersion evaluates the closed-form dispersion formulas used by the
RefractiveIndex.INFO database. Wavelengths are in micrometers, the unit the
database coefficients are written in.

Each formula family is identified by the integer id the database uses (1-9)
and reads a fixed-length prefix of the coefficient list. Every family
produces the real index n only.
*/
package dispersion

import (
	"errors"
	"fmt"
	"math"
)

// MaxCoefficients is the longest coefficient list any family reads.
const MaxCoefficients = 17

var (
	ErrUnknownFormula = errors.New("dispersion: unknown formula id")
	ErrTooFewCoefficients = errors.New("dispersion: too few coefficients")
	ErrTooManyCoefficients = errors.New("dispersion: too many coefficients")
	ErrNonFiniteCoefficient = errors.New("dispersion: coefficient is NaN or Inf")
)

// Formula describes one dispersion formula family.
type Formula struct {
	ID int
	Name string
	// NumCoefficients is the length of the coefficient prefix the family
	// reads. Shorter lists are rejected by Select.
	NumCoefficients int
	// Squared is true if the family computes n^2 rather than n.
	Squared bool

	eval func(wl float64, c []float64) float64
}

var formulas = [...]Formula{
	{1, "Sellmeier", 17, true, sellmeier},
	{2, "Sellmeier-2", 17, true, sellmeier2},
	{3, "Polynomial", 17, true, polynomial},
	{4, "RefractiveIndex.INFO", 17, true, riiFormula4},
	{5, "Cauchy", 11, false, cauchy},
	{6, "Gases", 11, false, gases},
	{7, "Herzberger", 6, false, herzberger},
	{8, "Retro", 4, true, retro},
	{9, "Exotic", 6, true, exotic},
}

// Formulas returns every registered family in id order.
func Formulas() []Formula {
	out := make([]Formula, len(formulas))
	copy(out, formulas[:])
	return out
}

// Lookup returns the family with the given id.
func Lookup(id int) (Formula, error) {
	if id < 1 || id > len(formulas) {
		return Formula{}, fmt.Errorf("%w: %d", ErrUnknownFormula, id)
	}
	return formulas[id-1], nil
}

// Evaluator is a formula bound to its coefficients. It does not change after
// Select returns and may be shared between goroutines.
type Evaluator struct {
	formula Formula
	c []float64
}

// Select binds the family with the given id to a coefficient list. cs must
// hold at least f.NumCoefficients finite values and at most MaxCoefficients
// values; coefficients past the family's prefix are ignored.
func Select(id int, cs []float64) (*Evaluator, error) {
	f, err := Lookup(id)
	if err != nil { return nil, err }

	if len(cs) > MaxCoefficients {
		return nil, fmt.Errorf("%w: got %d, at most %d are allowed",
			ErrTooManyCoefficients, len(cs), MaxCoefficients)
	} else if len(cs) < f.NumCoefficients {
		return nil, fmt.Errorf("%w: formula %d (%s) needs %d, got %d",
			ErrTooFewCoefficients, f.ID, f.Name, f.NumCoefficients, len(cs))
	}

	c := make([]float64, f.NumCoefficients)
	copy(c, cs)
	for i := range c {
		if math.IsNaN(c[i]) || math.IsInf(c[i], 0) {
			return nil, fmt.Errorf("%w: c[%d] = %g",
				ErrNonFiniteCoefficient, i, c[i])
		}
	}

	return &Evaluator{formula: f, c: c}, nil
}

// Formula returns the family the evaluator was built from.
func (e *Evaluator) Formula() Formula { return e.formula }

// Coefficients returns a copy of the coefficients the family reads.
func (e *Evaluator) Coefficients() []float64 {
	return append([]float64(nil), e.c...)
}

// N returns the real refractive index at wavelength wl.
func (e *Evaluator) N(wl float64) float64 { return e.formula.eval(wl, e.c) }

// NAll evaluates N at every wavelength in wls. An optional output slice of
// the same length may be supplied to prevent heap allocations.
func (e *Evaluator) NAll(wls []float64, out ...[]float64) []float64 {
	var res []float64
	if len(out) == 0 {
		res = make([]float64, len(wls))
	} else {
		res = out[0]
		if len(res) != len(wls) {
			panic(fmt.Sprintf("Output slice given to NAll() has length %d, "+
				"but %d wavelengths were given.", len(res), len(wls)))
		}
	}

	for i := range wls { res[i] = e.formula.eval(wls[i], e.c) }
	return res
}
