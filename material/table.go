package material

import (
	"github.com/phil-mansfield/rindex/math/interpolate"
)

// newTable fits a spline to one tabulated quantity and returns it along with
// the wavelength span of the table.
func newTable(
	quantity string, wls, vals []float64, kind interpolate.Kind,
) (interpolate.Interpolator, Interval, error) {
	if len(wls) == 0 && len(vals) == 0 {
		return nil, Interval{}, configErr(nil, "tabulated %s requested but "+
			"the dataset has no %s table", quantity, quantity)
	}

	sp, err := interpolate.New(kind, wls, vals)
	if err != nil {
		return nil, Interval{}, configErr(err, "%s table", quantity)
	}

	lo, hi := sp.Span()
	return sp, Interval{lo, hi}, nil
}
