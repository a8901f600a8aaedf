package rii

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/rindex/dispersion"
	"github.com/phil-mansfield/rindex/material"
	"github.com/phil-mansfield/rindex/math/interpolate"
)

const silica = `REFERENCES: "I. H. Malitson. J. Opt. Soc. Am. 55, 1205-1208 (1965)"
COMMENTS: "Room temperature"
DATA:
  - type: formula 1
    wavelength_range: 0.21 6.7
    coefficients: 0 0.6961663 0.0684043 0.4079426 0.1162414 0.8974794 9.896161
`

const tabulatedNK = `DATA:
  - type: tabulated nk
    data: |
        0.40 1.50 0.010
        0.50 1.49 0.020
        0.60 1.48 0.030
        0.70 1.47 0.040
`

func TestDecodeFormula(t *testing.T) {
	doc, err := Decode(strings.NewReader(silica))
	require.NoError(t, err)

	assert.Contains(t, doc.References, "Malitson")
	assert.Equal(t, 1, doc.Entry.Formula)
	assert.Equal(t, material.ModeNone, doc.Entry.Tabulated)
	assert.Equal(t, material.Interval{Min: 0.21, Max: 6.7}, doc.Entry.Range)
	require.Len(t, doc.Dataset.C, dispersion.MaxCoefficients)

	m, err := doc.Material()
	require.NoError(t, err)
	n, err := m.N(0.5876)
	require.NoError(t, err)
	assert.InDelta(t, 1.4585, n, 1e-3)

	_, err = m.N(0.2)
	var rerr *material.RangeError
	assert.ErrorAs(t, err, &rerr)
}

func TestDecodeTabulated(t *testing.T) {
	doc, err := Decode(strings.NewReader(tabulatedNK))
	require.NoError(t, err)
	assert.Equal(t, material.ModeNK, doc.Entry.Tabulated)
	assert.Equal(t, material.Interval{Min: 0.4, Max: 0.7}, doc.Entry.NRange)

	m, err := doc.Material(material.WithInterpolation(interpolate.NaturalKind))
	require.NoError(t, err)
	n, k, err := m.NK(0.55)
	require.NoError(t, err)
	assert.InDelta(t, 1.485, n, 1e-9)
	assert.InDelta(t, 0.025, k, 1e-9)
}

func TestDecodeFormulaWithK(t *testing.T) {
	text := silica + `  - type: tabulated k
    data: |
        0.3 1e-7
        0.4 2e-7
        0.5 3e-7
`
	doc, err := Decode(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, material.ModeK, doc.Entry.Tabulated)

	m, err := doc.Material()
	require.NoError(t, err)
	assert.Equal(t, material.Interval{Min: 0.21, Max: 6.7}, m.NBounds())
	assert.Equal(t, material.Interval{Min: 0.3, Max: 0.5}, m.KBounds())
	assert.Equal(t, material.FromFormula, m.NSource())
	assert.Equal(t, material.FromTable, m.KSource())
}

func TestDecodeKBeforeFormula(t *testing.T) {
	text := `DATA:
  - type: tabulated k
    data: "0.3 1e-7\n0.4 2e-7\n0.5 3e-7\n"
  - type: formula 1
    wavelength_range: 0.21 6.7
    coefficients: 0 0.6961663 0.0684043 0.4079426 0.1162414
`
	doc, err := Decode(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, material.ModeK, doc.Entry.Tabulated)
	assert.Equal(t, 1, doc.Entry.Formula)
	assert.Equal(t, material.Interval{Min: 0.3, Max: 0.5}, doc.Entry.KRange)

	_, err = Decode(strings.NewReader(`DATA:
  - {type: tabulated n, data: '0.1 1'}
  - {type: formula 1, wavelength_range: 0.1 1, coefficients: 1}
`))
	assert.ErrorIs(t, err, ErrBlocks)
}

func TestDecodeSeparateTables(t *testing.T) {
	text := `DATA:
  - type: tabulated n
    data: "0.4 1.5\n0.5 1.5\n0.6 1.5\n"
  - type: tabulated k
    data: "0.45 0\n0.55 0\n"
`
	doc, err := Decode(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, material.ModeNK, doc.Entry.Tabulated)
	assert.Equal(t, material.Interval{Min: 0.45, Max: 0.55}, doc.Entry.KRange)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name, text string
		sentinel error
	}{
		{"empty", "", ErrSchema},
		{"no data", "COMMENTS: nothing\n", ErrSchema},
		{"bad type", "DATA:\n  - type: formula 12\n    wavelength_range: 0.1 1\n" +
			"    coefficients: 1\n", ErrSchema},
		{"missing range", "DATA:\n  - type: formula 1\n    coefficients: 1\n",
			ErrSchema},
		{"missing table", "DATA:\n  - type: tabulated n\n", ErrSchema},
		{"three blocks", "DATA:\n" +
			"  - {type: tabulated n, data: '0.1 1'}\n" +
			"  - {type: tabulated k, data: '0.1 1'}\n" +
			"  - {type: tabulated k, data: '0.1 1'}\n", ErrSchema},
		{"k only", "DATA:\n  - {type: tabulated k, data: '0.1 1\n\n0.2 1'}\n",
			ErrBlocks},
		{"two formulas", "DATA:\n" +
			"  - {type: formula 1, wavelength_range: 0.1 1, coefficients: 1}\n" +
			"  - {type: formula 2, wavelength_range: 0.1 1, coefficients: 1}\n",
			ErrBlocks},
		{"formula and n", "DATA:\n" +
			"  - {type: formula 1, wavelength_range: 0.1 1, coefficients: 1}\n" +
			"  - {type: tabulated n, data: '0.1 1'}\n", ErrBlocks},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(test.text))
			assert.ErrorIs(t, err, test.sentinel)
		})
	}

	_, err := Decode(strings.NewReader("DATA:\n  - {type: tabulated nk, " +
		"data: '0.1 1 0\n\n0.2 1'}\n"))
	assert.Error(t, err, "ragged table")

	_, err = Decode(strings.NewReader("DATA:\n  - {type: formula 1, " +
		"wavelength_range: 0.1, coefficients: 1}\n"))
	assert.Error(t, err, "one-sided range")
}

func TestReadFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "silica.yml")
	require.NoError(t, os.WriteFile(fname, []byte(silica), 0644))

	doc, err := ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Entry.Formula)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
