package material

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/phil-mansfield/rindex/dispersion"
)

// FormulaNone marks an entry without a dispersion formula.
const FormulaNone = 0

// Mode says which quantities come from tables rather than from the formula.
type Mode string

const (
	ModeNone Mode = ""
	ModeN Mode = "n"
	ModeK Mode = "k"
	ModeNK Mode = "nk"
)

// ParseMode converts a catalog "tabulated" field into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeNone, ModeN, ModeK, ModeNK:
		return m, nil
	}
	return ModeNone, configErr(nil, "tabulated mode %q is not one of "+
		"\"\", \"n\", \"k\" or \"nk\"", s)
}

// HasN is true if n is read from a table.
func (m Mode) HasN() bool { return m == ModeN || m == ModeNK }

// HasK is true if k is read from a table.
func (m Mode) HasK() bool { return m == ModeK || m == ModeNK }

// Entry is the catalog description of one material's dispersion model.
type Entry struct {
	// Formula is a dispersion formula id (1-9) or FormulaNone.
	Formula int
	Tabulated Mode

	// Range is the interval of the formula. NRange and KRange, when set,
	// take precedence for the n and k paths. Zero intervals are unset.
	Range, NRange, KRange Interval
}

// Validate checks the fields of an entry that do not depend on its data.
func (e Entry) Validate() error {
	switch e.Tabulated {
	case ModeNone, ModeN, ModeK, ModeNK:
	default:
		return configErr(nil, "tabulated mode %q is not one of "+
			"\"\", \"n\", \"k\" or \"nk\"", string(e.Tabulated))
	}

	if e.Formula != FormulaNone {
		if _, err := dispersion.Lookup(e.Formula); err != nil {
			return configErr(err, "catalog formula")
		}
	} else if !e.Tabulated.HasN() {
		return configErr(nil, "entry has neither a formula nor an n table")
	}

	for _, iv := range []struct {
		name string
		iv Interval
	}{{"wl", e.Range}, {"wl_n", e.NRange}, {"wl_k", e.KRange}} {
		if err := iv.iv.validate(); err != nil {
			return configErr(err, "%s interval", iv.name)
		}
	}
	return nil
}

// EntryFromRecord builds an Entry from a catalog row. It reads the fields
// formula, tabulated, wl_min, wl_max, wl_n_min, wl_n_max, wl_k_min and
// wl_k_max; other fields are ignored and missing bounds are left unset. An
// empty, "nan" or zero formula means FormulaNone.
func EntryFromRecord(rec map[string]string) (Entry, error) {
	e := Entry{}

	formula, err := parseFormula(rec["formula"])
	if err != nil { return Entry{}, err }
	e.Formula = formula

	if e.Tabulated, err = ParseMode(rec["tabulated"]); err != nil {
		return Entry{}, err
	}

	fields := []struct {
		min, max string
		iv *Interval
	}{
		{"wl_min", "wl_max", &e.Range},
		{"wl_n_min", "wl_n_max", &e.NRange},
		{"wl_k_min", "wl_k_max", &e.KRange},
	}
	for _, f := range fields {
		if *f.iv, err = parseInterval(rec, f.min, f.max); err != nil {
			return Entry{}, err
		}
	}

	if err = e.Validate(); err != nil { return Entry{}, err }
	return e, nil
}

func parseFormula(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" { return FormulaNone, nil }

	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, configErr(err, "formula %q", s)
	}
	if math.IsNaN(x) { return FormulaNone, nil }
	if x != math.Trunc(x) || math.IsInf(x, 0) {
		return 0, configErr(nil, "formula %q is not an integer", s)
	}
	return int(x), nil
}

func parseInterval(rec map[string]string, minKey, maxKey string) (Interval, error) {
	lo, hasLo := rec[minKey]
	hi, hasHi := rec[maxKey]
	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if (!hasLo || lo == "") && (!hasHi || hi == "") { return Interval{}, nil }

	var (
		iv Interval
		err error
	)
	if iv.Min, err = strconv.ParseFloat(lo, 64); err != nil {
		return Interval{}, configErr(err, "%s = %q", minKey, lo)
	}
	if iv.Max, err = strconv.ParseFloat(hi, 64); err != nil {
		return Interval{}, configErr(err, "%s = %q", maxKey, hi)
	}
	if math.IsNaN(iv.Min) && math.IsNaN(iv.Max) { return Interval{}, nil }
	return iv, nil
}

func (e Entry) String() string {
	return fmt.Sprintf("formula=%d tabulated=%q wl=%s wl_n=%s wl_k=%s",
		e.Formula, string(e.Tabulated), e.Range, e.NRange, e.KRange)
}
