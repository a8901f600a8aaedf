/*package rii decodes RefractiveIndex.INFO data documents into a material
entry and dataset.

A document holds one or two DATA blocks. Each is either a formula,

    - type: formula 1
      wavelength_range: 0.21 6.7
      coefficients: 0 0.6961663 0.0684043 0.4079426 0.1162414

or a table of wavelength, n and/or k rows:

    - type: tabulated nk
      data: |
          0.50 1.46 0.01
          0.60 1.45 0.02

The accepted combinations are a formula, a formula with a tabulated k, a
tabulated n, a tabulated nk, or a tabulated n with a tabulated k.
*/
package rii

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/rindex/cmd/catalog"
	"github.com/phil-mansfield/rindex/dispersion"
	"github.com/phil-mansfield/rindex/material"
)

var (
	ErrSchema = errors.New("rii: document does not match the data schema")
	ErrBlocks = errors.New("rii: unsupported combination of DATA blocks")
)

//go:embed schema.json
var schemaJSON string

var schema = mustSchema(schemaJSON)

func mustSchema(s string) *gojsonschema.Schema {
	sch, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil { panic(fmt.Sprintf("rii: invalid embedded schema: %v", err)) }
	return sch
}

// Document is a decoded data document.
type Document struct {
	References, Comments string
	Entry material.Entry
	Dataset material.Dataset
}

// Material binds the document's entry to its dataset.
func (doc *Document) Material(opts ...material.Option) (*material.Material, error) {
	return material.New(doc.Entry, doc.Dataset, opts...)
}

type rawDocument struct {
	References string `yaml:"REFERENCES"`
	Comments string `yaml:"COMMENTS"`
	Data []rawBlock `yaml:"DATA"`
}

type rawBlock struct {
	Type string `yaml:"type"`
	WavelengthRange string `yaml:"wavelength_range"`
	Coefficients string `yaml:"coefficients"`
	Data string `yaml:"data"`
}

// ReadFile decodes the document stored in fname.
func ReadFile(fname string) (*Document, error) {
	f, err := os.Open(fname)
	if err != nil { return nil, err }
	defer f.Close()

	doc, err := Decode(f)
	if err != nil { return nil, fmt.Errorf("%s: %w", fname, err) }
	return doc, nil
}

// Decode reads one YAML document from r.
func Decode(r io.Reader) (*Document, error) {
	bs, err := io.ReadAll(r)
	if err != nil { return nil, err }

	var tree interface{}
	if err = yaml.Unmarshal(bs, &tree); err != nil {
		return nil, fmt.Errorf("rii: %w", err)
	}
	if err = validate(tree); err != nil { return nil, err }

	raw := &rawDocument{}
	if err = yaml.Unmarshal(bs, raw); err != nil {
		return nil, fmt.Errorf("rii: %w", err)
	}
	return convert(raw)
}

func validate(tree interface{}) error {
	if tree == nil { return fmt.Errorf("%w: empty document", ErrSchema) }

	res, err := schema.Validate(gojsonschema.NewGoLoader(tree))
	if err != nil { return fmt.Errorf("%w: %v", ErrSchema, err) }
	if res.Valid() { return nil }

	details := make([]string, 0, len(res.Errors()))
	for _, desc := range res.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(details, "; "))
}

func convert(raw *rawDocument) (*Document, error) {
	doc := &Document{References: raw.References, Comments: raw.Comments}
	e, ds := &doc.Entry, &doc.Dataset

	var hasFormula, hasN, hasK bool
	for i, b := range raw.Data {
		kind, arg, _ := strings.Cut(b.Type, " ")

		var err error
		switch {
		case kind == "formula" && !hasFormula && !hasN:
			hasFormula = true
			err = formulaBlock(b, e, ds)
		case kind == "tabulated" && arg == "n" && !hasN && !hasFormula:
			hasN = true
			ds.WlN, ds.N, e.NRange, err = tableBlock(b.Data)
		case kind == "tabulated" && arg == "k" && !hasK:
			hasK = true
			ds.WlK, ds.K, e.KRange, err = tableBlock(b.Data)
		case kind == "tabulated" && arg == "nk" && !hasN && !hasK && !hasFormula:
			hasN, hasK = true, true
			err = nkBlock(b.Data, e, ds)
		default:
			return nil, fmt.Errorf("%w: DATA[%d] is '%s'", ErrBlocks, i, b.Type)
		}
		if err != nil { return nil, fmt.Errorf("rii: DATA[%d]: %w", i, err) }
	}

	switch {
	case hasN && hasK: e.Tabulated = material.ModeNK
	case hasN: e.Tabulated = material.ModeN
	case hasK && hasFormula: e.Tabulated = material.ModeK
	case hasK: return nil, fmt.Errorf("%w: tabulated k without n", ErrBlocks)
	}

	if err := e.Validate(); err != nil { return nil, fmt.Errorf("rii: %w", err) }
	return doc, nil
}

func formulaBlock(b rawBlock, e *material.Entry, ds *material.Dataset) error {
	id, err := strconv.Atoi(strings.TrimPrefix(b.Type, "formula "))
	if err != nil { return err }
	e.Formula = id

	wl, err := fields(b.WavelengthRange)
	if err != nil { return fmt.Errorf("wavelength_range: %w", err) }
	if len(wl) != 2 {
		return fmt.Errorf("wavelength_range has %d values, not 2", len(wl))
	}
	e.Range = material.Interval{Min: wl[0], Max: wl[1]}

	cs, err := fields(b.Coefficients)
	if err != nil { return fmt.Errorf("coefficients: %w", err) }
	if len(cs) < dispersion.MaxCoefficients {
		padded := make([]float64, dispersion.MaxCoefficients)
		copy(padded, cs)
		cs = padded
	}
	ds.C = cs
	return nil
}

func tableBlock(data string) (wls, vals []float64, span material.Interval, err error) {
	cols, err := catalog.Parse([]byte(data), []int{0, 1})
	if err != nil { return nil, nil, material.Interval{}, err }
	return cols[0], cols[1], tableSpan(cols[0]), nil
}

func nkBlock(data string, e *material.Entry, ds *material.Dataset) error {
	cols, err := catalog.Parse([]byte(data), []int{0, 1, 2})
	if err != nil { return err }
	ds.WlN, ds.N = cols[0], cols[1]
	ds.WlK, ds.K = append([]float64(nil), cols[0]...), cols[2]
	e.NRange, e.KRange = tableSpan(cols[0]), tableSpan(cols[0])
	return nil
}

// tableSpan is the wavelength span of a table. Unsorted tables are reported
// later, when the spline is fit.
func tableSpan(wls []float64) material.Interval {
	if len(wls) == 0 { return material.Interval{} }
	iv := material.Interval{Min: wls[0], Max: wls[0]}
	for _, wl := range wls {
		if wl < iv.Min { iv.Min = wl }
		if wl > iv.Max { iv.Max = wl }
	}
	return iv
}

func fields(s string) ([]float64, error) {
	toks := strings.Fields(s)
	out := make([]float64, len(toks))
	for i := range toks {
		x, err := strconv.ParseFloat(toks[i], 64)
		if err != nil { return nil, err }
		out[i] = x
	}
	return out, nil
}
