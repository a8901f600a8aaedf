package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/rindex/cmd/catalog"
	"github.com/phil-mansfield/rindex/logging"
	"github.com/phil-mansfield/rindex/material"
	"github.com/phil-mansfield/rindex/math/interpolate"
	"github.com/phil-mansfield/rindex/parse"
	"github.com/phil-mansfield/rindex/rii"
)

// EvalConfig holds the flags of the eval mode.
type EvalConfig struct {
	Wavelengths []float64
	// Grid is an optional (min, max, count) triple of evenly spaced
	// wavelengths, used in addition to Wavelengths.
	Grid []float64
	Eps, Group bool
	Interp interpolate.Kind
}

func (a *app) evalCommand() *cobra.Command {
	config := &EvalConfig{}

	cmd := &cobra.Command{
		Use: "eval FILE",
		Short: "Evaluate n and k of a material file at the given wavelengths",
		Long: `Evaluate n and k of a material file at wavelengths in micrometers.

FILE is either a RefractiveIndex.INFO data document (.yml or .yaml) or a
[material] config file; run 'rindex example' for a template of the latter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config.Interp, err = interpolate.ParseKind(a.v.GetString("interp"))
			if err != nil { return err }

			m, err := a.loadMaterial(args[0], config.Interp)
			if err != nil { return err }

			start := time.Now()
			lines, err := config.Run(m)
			if err != nil { return err }
			if logging.Mode >= logging.Performance {
				a.log.Info("evaluated", "lines", len(lines)-1,
					"elapsed", time.Since(start), logging.MemAttr())
			}
			return a.writeLines(lines)
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&config.Wavelengths, "wl", nil,
		"comma-separated wavelengths in micrometers")
	flags.Float64SliceVar(&config.Grid, "grid", nil,
		"evenly spaced wavelengths given as min,max,count")
	flags.BoolVar(&config.Eps, "eps", false,
		"also print the relative permittivity (n + ik)^2")
	flags.BoolVar(&config.Group, "group", false,
		"also print the group index; wavelengths must be increasing")
	flags.String("interp", "notaknot",
		"spline used for tabulated data: notaknot or natural")
	_ = a.v.BindPFlag("interp", flags.Lookup("interp"))

	return cmd
}

// loadMaterial reads a material from a data document or a material file,
// chosen by the extension of fname.
func (a *app) loadMaterial(
	fname string, kind interpolate.Kind,
) (*material.Material, error) {
	var (
		e material.Entry
		ds material.Dataset
	)

	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yml", ".yaml":
		doc, err := rii.ReadFile(fname)
		if err != nil { return nil, err }
		e, ds = doc.Entry, doc.Dataset
	default:
		var err error
		if e, ds, err = parse.ReadMaterial(fname); err != nil {
			return nil, err
		}
	}

	m, err := material.New(e, ds, material.WithInterpolation(kind))
	if err != nil { return nil, fmt.Errorf("%s: %w", fname, err) }

	a.log.Debug("material loaded", "file", fname, "entry", e.String(),
		"n", m.NSource().String(), "k", m.KSource().String(),
		"interp", kind.String())
	return m, nil
}

// wavelengths returns the requested wavelengths in the order they were given.
func (config *EvalConfig) wavelengths() ([]float64, error) {
	wls := append([]float64{}, config.Wavelengths...)

	if len(config.Grid) > 0 {
		if len(config.Grid) != 3 {
			return nil, fmt.Errorf("--grid takes min,max,count, but %d "+
				"values were given", len(config.Grid))
		}
		n := int(config.Grid[2])
		if float64(n) != config.Grid[2] || n < 2 {
			return nil, fmt.Errorf("--grid count must be an integer of at "+
				"least 2, not %g", config.Grid[2])
		}
		wls = append(wls, floats.Span(make([]float64, n),
			config.Grid[0], config.Grid[1])...)
	}

	if len(wls) == 0 {
		return nil, fmt.Errorf("no wavelengths given: use --wl or --grid")
	}
	return wls, nil
}

// Run evaluates m and returns the lines of the output table.
func (config *EvalConfig) Run(m *material.Material) ([]string, error) {
	wls, err := config.wavelengths()
	if err != nil { return nil, err }

	ns, ks, err := m.NKAll(wls)
	if err != nil { return nil, err }

	names := []string{"wl", "n", "k"}
	cols := [][]float64{wls, ns, ks}

	if config.Eps {
		eps, err := m.EpsAll(wls)
		if err != nil { return nil, err }
		re, im := make([]float64, len(eps)), make([]float64, len(eps))
		for i := range eps { re[i], im[i] = real(eps[i]), imag(eps[i]) }
		names = append(names, "eps_re", "eps_im")
		cols = append(cols, re, im)
	}

	if config.Group {
		ng, err := m.GroupIndexAll(wls)
		if err != nil { return nil, err }
		names = append(names, "n_g")
		cols = append(cols, ng)
	}

	order, sizes := make([]int, len(cols)), make([]int, len(cols))
	for i := range order { order[i], sizes[i] = i, 1 }

	lines := []string{catalog.CommentString(names, order, sizes)}
	lines = append(lines, catalog.FormatCols(cols, order)...)
	return lines, nil
}
