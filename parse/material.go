package parse

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/rindex/dispersion"
	"github.com/phil-mansfield/rindex/material"
	"github.com/phil-mansfield/rindex/version"
)

// MaterialHeader is the section name of material files.
const MaterialHeader = "material"

type materialConfig struct {
	version string
	formula int64
	tabulated string
	wlMin, wlMax float64
	wlNMin, wlNMax float64
	wlKMin, wlKMax float64
	c, wlN, n, wlK, k []float64
}

func (c *materialConfig) vars() *ConfigVars {
	vars := NewConfigVars(MaterialHeader)
	vars.String(&c.version, "Version", "")
	vars.Int(&c.formula, "Formula", material.FormulaNone)
	vars.String(&c.tabulated, "Tabulated", "")
	vars.Float(&c.wlMin, "WlMin", 0)
	vars.Float(&c.wlMax, "WlMax", 0)
	vars.Float(&c.wlNMin, "WlNMin", 0)
	vars.Float(&c.wlNMax, "WlNMax", 0)
	vars.Float(&c.wlKMin, "WlKMin", 0)
	vars.Float(&c.wlKMax, "WlKMax", 0)
	vars.Floats(&c.c, "C", nil)
	vars.Floats(&c.wlN, "WlN", nil)
	vars.Floats(&c.n, "N", nil)
	vars.Floats(&c.wlK, "WlK", nil)
	vars.Floats(&c.k, "K", nil)
	return vars
}

// ExampleMaterial is a material file describing fused silica.
const ExampleMaterial = `[material]
# Version is the source version the file was written for. Optional.
Version = 0.1.0

# Formula is a dispersion formula id (1-9), or 0 for purely tabulated data.
Formula = 2
# Tabulated is one of "", n, k or nk.
Tabulated =

# The valid range of the formula in micrometers. WlNMin, WlNMax, WlKMin and
# WlKMax may be used to give separate n and k ranges.
WlMin = 0.21
WlMax = 6.7

# Coefficients of the formula, padded with zeros.
C = 0, 0.6961663, 0.0046791, 0.4079426, 0.0135121, 0.8974794, 97.934

# Tables, if Tabulated asks for them:
# WlN = 0.5, 0.6, 0.7
# N = 1.46, 1.458, 1.455
# WlK = ...
# K = ...`

// ReadMaterial reads a material file.
func ReadMaterial(fname string) (material.Entry, material.Dataset, error) {
	bs, err := os.ReadFile(fname)
	if err != nil { return material.Entry{}, material.Dataset{}, err }
	return ParseMaterial(fname, bs)
}

// ParseMaterial parses the contents of a material file. The entry is
// validated, but the dataset is only checked by material.New. Coefficient
// lists shorter than dispersion.MaxCoefficients are padded with zeros.
func ParseMaterial(
	fname string, bs []byte,
) (material.Entry, material.Dataset, error) {
	c := &materialConfig{}
	if err := ParseConfig(fname, bs, c.vars()); err != nil {
		return material.Entry{}, material.Dataset{}, err
	}

	if c.version != "" {
		ok, err := version.Compatible(c.version)
		if err != nil {
			return material.Entry{}, material.Dataset{}, fmt.Errorf(
				"material file %s: version '%s': %w", fname, c.version, err)
		} else if !ok {
			return material.Entry{}, material.Dataset{}, fmt.Errorf(
				"material file %s was written for version %s, which this "+
				"source (version %s) cannot read", fname, c.version,
				version.SourceVersion)
		}
	}

	mode, err := material.ParseMode(c.tabulated)
	if err != nil {
		return material.Entry{}, material.Dataset{}, fmt.Errorf(
			"material file %s: %w", fname, err)
	}

	e := material.Entry{
		Formula: int(c.formula),
		Tabulated: mode,
		Range: material.Interval{Min: c.wlMin, Max: c.wlMax},
		NRange: material.Interval{Min: c.wlNMin, Max: c.wlNMax},
		KRange: material.Interval{Min: c.wlKMin, Max: c.wlKMax},
	}
	if err := e.Validate(); err != nil {
		return material.Entry{}, material.Dataset{}, fmt.Errorf(
			"material file %s: %w", fname, err)
	}

	if len(c.c) > 0 && len(c.c) < dispersion.MaxCoefficients {
		padded := make([]float64, dispersion.MaxCoefficients)
		copy(padded, c.c)
		c.c = padded
	}

	ds := material.Dataset{C: c.c, WlN: c.wlN, N: c.n, WlK: c.wlK, K: c.k}
	return e, ds, nil
}
