// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package table

// Interval is a half-open character range [Start, End).
type Interval struct {
	Start int
	End   int
}

// ColumnSpec names a column and, for non-standard tables, the character
// interval its header token(s) occupied — the slot data tokens are
// assigned against during overlap assignment. Interval is nil for columns
// that came from the Standard Parser's Variables section, which has no
// notion of screen position.
type ColumnSpec struct {
	Name     string
	Interval *Interval
}

// Row holds one cell per column, in column order. A nil cell is the
// explicit null sentinel — missing cells are never dropped, only left
// null.
type Row []*string

// Table is the parser's sole output shape: an ordered column list, an
// ordered row list each exactly len(Columns) wide, and free-form metadata.
type Table struct {
	Columns []ColumnSpec
	Rows    []Row
	Attrs   map[string]string
}

// ColumnNames returns the table's column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Cell returns a row's cell text and whether it was non-null.
func Cell(r Row, i int) (string, bool) {
	if i < 0 || i >= len(r) || r[i] == nil {
		return "", false
	}
	return *r[i], true
}

// NullRow returns a Row of n null cells.
func NullRow(n int) Row { return make(Row, n) }

func strPtr(s string) *string { return &s }
