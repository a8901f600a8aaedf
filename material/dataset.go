package material

// Dataset holds the numbers a catalog entry refers to: the coefficients of
// its formula and its n and k tables. Unused fields are left nil.
type Dataset struct {
	C []float64
	WlN, N []float64
	WlK, K []float64
}

// columnAliases lists the accepted column names of each Dataset field. The
// first name is the current one.
var columnAliases = []struct {
	names []string
	field func(*Dataset) *[]float64
}{
	{[]string{"c", "cs"}, func(d *Dataset) *[]float64 { return &d.C }},
	{[]string{"wl_n", "wls_n"}, func(d *Dataset) *[]float64 { return &d.WlN }},
	{[]string{"n", "ns"}, func(d *Dataset) *[]float64 { return &d.N }},
	{[]string{"wl_k", "wls_k"}, func(d *Dataset) *[]float64 { return &d.WlK }},
	{[]string{"k", "ks"}, func(d *Dataset) *[]float64 { return &d.K }},
}

// DatasetFromColumns builds a Dataset from named columns, accepting both
// the current column names and the older plural ones. Columns with other
// names are ignored. Giving a field under two names is an error.
func DatasetFromColumns(cols map[string][]float64) (Dataset, error) {
	ds := Dataset{}
	for _, alias := range columnAliases {
		found := ""
		for _, name := range alias.names {
			col, ok := cols[name]
			if !ok { continue }
			if found != "" {
				return Dataset{}, configErr(nil, "columns %q and %q both "+
					"given", found, name)
			}
			found = name
			*alias.field(&ds) = append([]float64(nil), col...)
		}
	}
	return ds, nil
}
