package material

import (
	"errors"
	"math"
	"testing"
)

func TestEntryFromRecord(t *testing.T) {
	table := []struct {
		rec map[string]string
		e Entry
		valid bool
	}{
		{map[string]string{"formula": "1", "wl_min": "0.25", "wl_max": "2"},
			Entry{Formula: 1, Range: Interval{0.25, 2}}, true},
		{map[string]string{"formula": "2.0", "tabulated": "k",
			"wl_min": "0.3", "wl_max": "1", "wl_k_min": "0.4", "wl_k_max": "0.9",
			"name": "ignored"},
			Entry{Formula: 2, Tabulated: ModeK, Range: Interval{0.3, 1},
				KRange: Interval{0.4, 0.9}}, true},
		{map[string]string{"formula": "nan", "tabulated": " NK ",
			"wl_min": "nan", "wl_max": "nan",
			"wl_n_min": "0.2", "wl_n_max": "0.8"},
			Entry{Tabulated: ModeNK, NRange: Interval{0.2, 0.8}}, true},
		{map[string]string{"tabulated": "n"}, Entry{Tabulated: ModeN}, true},
		{map[string]string{"formula": "1.5", "wl_min": "0.3", "wl_max": "1"},
			Entry{}, false},
		{map[string]string{"formula": "one"}, Entry{}, false},
		{map[string]string{"formula": "10", "wl_min": "0.3", "wl_max": "1"},
			Entry{}, false},
		{map[string]string{"tabulated": "x"}, Entry{}, false},
		{map[string]string{}, Entry{}, false},
		{map[string]string{"formula": "1", "wl_min": "0.3"}, Entry{}, false},
		{map[string]string{"formula": "1", "wl_min": "2", "wl_max": "1"},
			Entry{}, false},
	}

	for i := range table {
		e, err := EntryFromRecord(table[i].rec)
		if table[i].valid && err != nil {
			t.Errorf("%d) Expected success, got error '%s'.", i, err.Error())
		} else if !table[i].valid {
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Errorf("%d) Expected ConfigurationError, got %v.", i, err)
			}
		} else if e != table[i].e {
			t.Errorf("%d) Expected %s, got %s.", i, table[i].e, e)
		}
	}
}

func TestParseMode(t *testing.T) {
	table := []struct {
		s string
		m Mode
		hasN, hasK, valid bool
	}{
		{"", ModeNone, false, false, true},
		{"n", ModeN, true, false, true},
		{"K", ModeK, false, true, true},
		{" nk", ModeNK, true, true, true},
		{"kn", ModeNone, false, false, false},
	}

	for i := range table {
		m, err := ParseMode(table[i].s)
		if (err == nil) != table[i].valid {
			t.Errorf("%d) Expected valid = %v, got error %v.",
				i, table[i].valid, err)
			continue
		}
		if m != table[i].m || m.HasN() != table[i].hasN ||
			m.HasK() != table[i].hasK {
			t.Errorf("%d) Expected mode %q, got %q.", i, table[i].m, m)
		}
	}
}

func TestInterval(t *testing.T) {
	iv := Interval{0.25, 2.0}
	for _, wl := range []float64{0.25, 1, 2.0} {
		if !iv.Contains(wl) {
			t.Errorf("Expected %s to contain %g.", iv, wl)
		}
	}
	for _, wl := range []float64{0.2499, 2.0001, math.NaN(), math.Inf(-1)} {
		if iv.Contains(wl) {
			t.Errorf("Expected %s to exclude %g.", iv, wl)
		}
	}

	if s := (Interval{}).String(); s != "unset" {
		t.Errorf("Expected 'unset', got '%s'.", s)
	}

	out, err := within(Interval{0.25, 2.0}, Interval{0, 0.99})
	if err != nil || out != (Interval{0.25, 0.99}) {
		t.Errorf("Expected [0.25, 0.99], got %s, %v.", out, err)
	}
	out, err = within(Interval{}, Interval{0.1, 0.5})
	if err != nil || out != (Interval{0.1, 0.5}) {
		t.Errorf("Expected [0.1, 0.5], got %s, %v.", out, err)
	}
	if _, err = within(Interval{1, 2}, Interval{0, 0.5}); err == nil {
		t.Errorf("Expected disjoint intervals to fail.")
	}
}

func TestDatasetFromColumns(t *testing.T) {
	cols := map[string][]float64{
		"cs": {1, 2, 3},
		"wl_n": {0.1, 0.2},
		"ns": {1.4, 1.5},
		"extra": {9},
	}
	ds, err := DatasetFromColumns(cols)
	if err != nil { t.Fatalf("Expected success, got '%s'.", err.Error()) }

	if len(ds.C) != 3 || ds.C[2] != 3 {
		t.Errorf("Expected C = [1 2 3], got %v.", ds.C)
	}
	if len(ds.WlN) != 2 || len(ds.N) != 2 || ds.N[1] != 1.5 {
		t.Errorf("Expected n table of length 2, got %v, %v.", ds.WlN, ds.N)
	}
	if ds.WlK != nil || ds.K != nil {
		t.Errorf("Expected no k table, got %v, %v.", ds.WlK, ds.K)
	}

	cols["cs"][0] = 100
	if ds.C[0] != 1 {
		t.Errorf("Expected DatasetFromColumns to copy its input.")
	}

	_, err = DatasetFromColumns(map[string][]float64{"k": {1}, "ks": {1}})
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Errorf("Expected ConfigurationError for duplicate columns, got %v.",
			err)
	}
}
