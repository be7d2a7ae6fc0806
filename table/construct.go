// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package table

import (
	"strings"

	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/lex"
)

// FromBlock builds a Table from a classified block's header and data lines,
// choosing Direct or Overlap construction by whether the data lines'
// token count is uniform (CV == 0 selects Direct).
func FromBlock(headerLines, dataLines []ingest.Line, delim lex.Delimiter, cv float64) *Table {
	cols := ExtractHeaders(headerLines)
	var rows []Row
	if cv == 0 {
		rows = Direct(cols, dataLines, delim)
	} else {
		rows = Overlap(cols, dataLines, delim)
	}
	return &Table{Columns: cols, Rows: rows, Attrs: map[string]string{}}
}

// Direct constructs rows by position: the Nth token goes in the Nth column.
// It covers the three width cases — D == H (exact), D < H (pad with null
// on the right), D > H (extra trailing tokens are joined with a single
// space into the last column).
func Direct(cols []ColumnSpec, dataLines []ingest.Line, delim lex.Delimiter) []Row {
	rows := make([]Row, 0, len(dataLines))
	h := len(cols)
	for _, l := range dataLines {
		toks := lex.Tokenize(l.Expanded, delim)
		d := len(toks)
		row := make(Row, h)
		switch {
		case d == h:
			for i, tk := range toks {
				row[i] = strPtr(tk.Text)
			}
		case d < h:
			for i := 0; i < d; i++ {
				row[i] = strPtr(toks[i].Text)
			}
			// remaining cells stay nil
		default: // d > h
			for i := 0; i < h-1; i++ {
				row[i] = strPtr(toks[i].Text)
			}
			if h > 0 {
				parts := make([]string, 0, d-(h-1))
				for i := h - 1; i < d; i++ {
					parts = append(parts, toks[i].Text)
				}
				row[h-1] = strPtr(strings.Join(parts, " "))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Overlap constructs rows for ragged data by assigning each data token to
// the column whose header interval it overlaps the most. Tie-break order,
// applied in sequence until one rule picks a winner:
//
//  1. Largest overlap amount wins.
//  2. On a tie, the column whose interval midpoint is closest to the
//     token's midpoint wins.
//  3. A further tie goes to the earlier (leftmost) column, since columns
//     are scanned in order and the first match already found is kept.
//  4. A token that overlaps no column's interval at all is assigned to the
//     nearest column whose interval starts to its right, or the last
//     column if none does.
//  5. Two tokens assigned to the same column are joined with a single
//     space, in the order they appear on the line.
func Overlap(cols []ColumnSpec, dataLines []ingest.Line, delim lex.Delimiter) []Row {
	rows := make([]Row, 0, len(dataLines))
	for _, l := range dataLines {
		toks := lex.Tokenize(l.Expanded, delim)
		parts := make([][]string, len(cols))
		for _, tk := range toks {
			idx := assignColumn(cols, tk)
			parts[idx] = append(parts[idx], tk.Text)
		}
		row := make(Row, len(cols))
		for i, p := range parts {
			if len(p) > 0 {
				row[i] = strPtr(strings.Join(p, " "))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func assignColumn(cols []ColumnSpec, tk lex.Token) int {
	best := -1
	bestOverlap := 0
	bestDist := -1
	for i, c := range cols {
		if c.Interval == nil {
			continue
		}
		ov := overlapAmount(tk.Start, tk.End, c.Interval.Start, c.Interval.End)
		if ov == 0 {
			continue
		}
		dist := midpointDistance(tk, *c.Interval)
		if ov > bestOverlap || (ov == bestOverlap && dist < bestDist) {
			best, bestOverlap, bestDist = i, ov, dist
		}
	}
	if best >= 0 {
		return best
	}
	return nearestColumnToRight(cols, tk)
}

func midpointDistance(tk lex.Token, iv Interval) int {
	tm := (tk.Start + tk.End) / 2
	im := (iv.Start + iv.End) / 2
	d := tm - im
	if d < 0 {
		d = -d
	}
	return d
}

func nearestColumnToRight(cols []ColumnSpec, tk lex.Token) int {
	best := -1
	bestStart := -1
	for i, c := range cols {
		if c.Interval == nil || c.Interval.Start < tk.Start {
			continue
		}
		if best == -1 || c.Interval.Start < bestStart {
			best, bestStart = i, c.Interval.Start
		}
	}
	if best >= 0 {
		return best
	}
	if len(cols) == 0 {
		return 0
	}
	return len(cols) - 1
}
