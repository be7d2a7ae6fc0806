// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package table

import (
	"fmt"
	"math"
	"strings"

	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/lex"
)

// ExtractHeaders builds ColumnSpecs from a block's header lines. A single
// header line's tokens become the columns directly. For more than one
// line, the bottom line is the most granular and anchors each column's
// interval; upper lines contribute to the name by horizontal span, not by
// literal overlap: each upper-line token owns every bottom column whose
// anchor falls between the midpoints of the whitespace gaps on either
// side of it, so a label like "Uranium" printed once still claims every
// narrower column beneath it and not just the one it happens to sit
// directly above.
//
// A column's emitted Interval always matches its anchor on the bottom
// line: that is the interval downstream overlap assignment reads, and it
// must stay distinct per column even when a single wide upper-line token
// labels several of them.
func ExtractHeaders(headerLines []ingest.Line) []ColumnSpec {
	if len(headerLines) == 0 {
		return nil
	}
	levels := make([][]lex.Token, len(headerLines))
	for i, l := range headerLines {
		levels[i] = lex.Tokenize(l.Expanded, lex.MultiSpace)
	}
	return mergeHeaderLevels(levels)
}

type headerColumn struct {
	anchor Interval // bottom line's own interval; emitted unchanged
	names  []string // top-to-bottom
}

// span is the horizontal run of columns an upper-line token owns.
type span struct {
	start, end int
}

// tokenSpans divides the line into one span per token, with the boundary
// between two adjacent tokens set at the midpoint of the gap between
// them. The first token's span is open on the left and the last token's
// span is open on the right, so a column at either edge of the line still
// resolves to a token.
func tokenSpans(level []lex.Token) []span {
	spans := make([]span, len(level))
	for j, tok := range level {
		start := math.MinInt
		if j > 0 {
			start = (level[j-1].End + tok.Start) / 2
		}
		end := math.MaxInt
		if j+1 < len(level) {
			end = (tok.End + level[j+1].Start) / 2
		}
		spans[j] = span{start: start, end: end}
	}
	return spans
}

func mergeHeaderLevels(levels [][]lex.Token) []ColumnSpec {
	bottom := levels[len(levels)-1]
	cols := make([]headerColumn, len(bottom))
	for i, tok := range bottom {
		cols[i] = headerColumn{anchor: Interval{Start: tok.Start, End: tok.End}, names: []string{tok.Text}}
	}

	for lvl := len(levels) - 2; lvl >= 0; lvl-- {
		spans := tokenSpans(levels[lvl])
		for i := range cols {
			c := &cols[i]
			for j, tok := range levels[lvl] {
				s := spans[j]
				if c.anchor.Start >= s.start && c.anchor.Start < s.end {
					c.names = append([]string{tok.Text}, c.names...)
					break
				}
			}
		}
	}

	return disambiguate(cols)
}

func disambiguate(cols []headerColumn) []ColumnSpec {
	specs := make([]ColumnSpec, len(cols))
	seen := map[string]int{}
	for i, c := range cols {
		name := strings.Join(c.names, " ")
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		anchor := c.anchor
		specs[i] = ColumnSpec{Name: name, Interval: &anchor}
	}
	return specs
}

func overlapAmount(aStart, aEnd, bStart, bEnd int) int {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	if hi > lo {
		return hi - lo
	}
	return 0
}
