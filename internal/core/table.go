package core

import "strconv"

// Table is an in-memory table of string fields.
// Every row has exactly len(Columns) fields once a loader has produced it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates a table from column names and rows.
func NewTable(columns []string, rows [][]string) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Width returns the number of columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// positionalColumns returns the labels used for headerless input: "0", "1", ...
func positionalColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	return cols
}

// uniqueColumns turns a raw header row into usable column names.
// Empty names become "Unnamed: <i>" and repeated names get a ".N" suffix
// ("a", "a" -> "a", "a.1").
func uniqueColumns(header []string) []string {
	cols := make([]string, len(header))
	used := make(map[string]bool, len(header))
	suffix := make(map[string]int)

	for i, name := range header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		candidate := name
		for used[candidate] {
			suffix[name]++
			candidate = name + "." + strconv.Itoa(suffix[name])
		}

		used[candidate] = true
		cols[i] = candidate
	}

	return cols
}

// padRow extends row with empty fields until it has width entries.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
