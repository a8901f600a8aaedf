/*package catalog reads and writes the whitespace-separated numeric column
blocks used by tabulated data and by the CLI's output.*/
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrColumnCount = errors.New("catalog: inconsistent column count")

// CommentString returns the header line describing the columns written by
// FormatCols. sizes gives the number of output columns each name covers.
func CommentString(names []string, order, sizes []int) string {
	tokens := []string{"# Column contents:"}

	n := 0
	for _, idx := range order {
		if idx >= len(names) {
			panic("Column ordering out of range.")
		}

		if sizes[idx] == 1 {
			tokens = append(tokens, fmt.Sprintf("%s(%d)", names[idx], n))
		} else {
			tokens = append(tokens, fmt.Sprintf("%s(%d-%d)", names[idx],
				n, n+sizes[idx]-1))
		}
		n += sizes[idx]
	}

	return strings.Join(tokens, " ")
}

// FormatCols formats float columns into right-aligned lines. The columns are
// written in the given order.
func FormatCols(cols [][]float64, order []int) []string {
	if len(cols) == 0 || len(cols[0]) == 0 { return []string{} }

	height := len(cols[0])
	formatted := make([][]string, len(cols))
	for i := range cols {
		if len(cols[i]) != height {
			panic("Columns of unequal height.")
		}
		formatted[i] = formatFloatCol(cols[i])
	}

	ordered := [][]string{}
	for _, idx := range order {
		if idx >= len(cols) {
			panic("Column ordering out of range.")
		}
		ordered = append(ordered, formatted[idx])
	}

	lines := make([]string, height)
	tokens := make([]string, len(ordered))
	for i := 0; i < height; i++ {
		for j := range ordered { tokens[j] = ordered[j][i] }
		lines[i] = strings.Join(tokens, " ")
	}

	return lines
}

func formatFloatCol(col []float64) []string {
	width := 0
	for i := range col {
		n := len(strconv.FormatFloat(col[i], 'g', 8, 64))
		if n > width { width = n }
	}

	out := make([]string, len(col))
	for i := range col {
		out[i] = fmt.Sprintf("%*s", width, strconv.FormatFloat(col[i], 'g', 8, 64))
	}

	return out
}

// Parse parses the specified float columns in a byte block. Every line must
// have the same number of columns. Lines may be separated by '\n' or "\r\n"
// and "#" starts a comment.
func Parse(data []byte, colIdxs []int) ([][]float64, error) {
	lines, nComm := split(data, '\n', '#')
	lines = uncomment(lines, '#', nComm)
	lines = trim(lines)
	return parse(lines, colIdxs)
}

// split splits a byte splice at each separating flag. Faster than
// bytes.Split() because slicing is used instead of allocations and because
// only one separator is used.
//
// Some of the calculations associated with uncommenting are done here for a
// slight performance boost.
func split(data []byte, sep, comm byte) (lines [][]byte, nComm int) {
	n := 0
	for _, c := range data {
		if c == sep { n++ }
		if c == comm { nComm++ }
	}

	tokens := make([][]byte, n+1)

	for j := 0; j < n; j++ {
		idx := bytes.IndexByte(data, sep)
		tokens[j] = data[:idx]
		data = data[idx+1:]
	}
	tokens[n] = data

	return tokens, nComm
}

// uncomment removes file comments in the form of "data # comment". Optimized
// for the common case where comments are rare and at the start of the file.
func uncomment(lines [][]byte, comm byte, nComm int) [][]byte {
	if nComm == 0 { return lines }

	for i, line := range lines {
		commentStart := bytes.IndexByte(line, comm)
		if commentStart == -1 { continue }

		lines[i] = line[:commentStart]

		n := 1
		for _, c := range line[commentStart+1:] {
			if c == comm { n++ }
		}

		nComm -= n
		if nComm == 0 { return lines }
	}

	return lines
}

func isSep(c byte) bool { return c == ' ' || c == '\t' || c == '\r' }

// trim removes empty lines.
func trim(lines [][]byte) [][]byte {
	j := 0

	LineLoop:
	for i, line := range lines {
		for _, c := range line {
			if !isSep(c) {
				lines[j] = lines[i]
				j++
				continue LineLoop
			}
		}
	}

	return lines[:j]
}

func parse(lines [][]byte, colIdxs []int) ([][]float64, error) {
	cols := make([][]float64, len(colIdxs))
	for i := range cols { cols[i] = make([]float64, len(lines)) }

	if len(lines) == 0 { return cols, nil }
	width := countFields(lines[0])
	for _, idx := range colIdxs {
		if idx < 0 || idx >= width {
			return nil, fmt.Errorf("%w: column %d requested, but data has "+
				"%d columns", ErrColumnCount, idx, width)
		}
	}
	buf := make([][]byte, width)

	var err error
	for i, line := range lines {
		if n := countFields(line); n != width {
			return nil, fmt.Errorf("%w: data (not file) line %d has %d "+
				"columns, not %d", ErrColumnCount, i+1, n, width)
		}
		words := fields(line, buf)

		for j := range colIdxs {
			cols[j][i], err = strconv.ParseFloat(string(words[colIdxs[j]]), 64)
			if err != nil {
				return nil, fmt.Errorf("catalog: data (not file) line %d: %w",
					i+1, err)
			}
		}
	}

	return cols, nil
}

func countFields(data []byte) int {
	n := 0
	inField := false
	for _, c := range data {
		wasInField := inField
		inField = !isSep(c)
		if inField && !wasInField { n++ }
	}
	return n
}

// Optimized and buffered analog to the standard library's bytes.FieldsFunc()
// function. buf must have room for every field of data.
func fields(data []byte, buf [][]byte) [][]byte {
	na := 0
	fieldStart := -1

	for i, c := range data {
		if fieldStart < 0 && !isSep(c) {
			fieldStart = i
		} else if fieldStart >= 0 && isSep(c) {
			buf[na] = data[fieldStart:i]
			na++
			fieldStart = -1
		}
	}

	if fieldStart >= 0 {
		buf[na] = data[fieldStart:]
		na++
	}

	return buf[:na]
}
