// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package blocks

import (
	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/lex"
)

// Kind labels a classified block. The zero value, Unknown, never appears
// on a block that has passed through Classify.
type Kind int

const (
	Unknown Kind = iota
	Narrative
	HeaderOnly
	CompleteTabular
	DataOnly
)

func (k Kind) String() string {
	switch k {
	case Narrative:
		return "narrative"
	case HeaderOnly:
		return "header-only"
	case CompleteTabular:
		return "complete-tabular"
	case DataOnly:
		return "data-only"
	default:
		return "unknown"
	}
}

// RawBlock is a maximal run of consecutive non-blank lines, as produced by
// Segment. Start and End are the 0-based indexes of the first and last
// (inclusive) lines in the source file.
type RawBlock struct {
	Start int
	End   int
	Lines []ingest.Line
}

// Stats holds per-delimiter token statistics for a block.
type Stats struct {
	ModeTokenCount     map[lex.Delimiter]int
	CVTokenCount       map[lex.Delimiter]float64
	MeanNumericRatio   float64
	PerLineTokenCounts map[lex.Delimiter][]int
}

// StatBlock is a RawBlock annotated with Stats.
type StatBlock struct {
	RawBlock
	Stats Stats
}

// ClassifiedBlock is a StatBlock with a terminal Kind, header extent, and
// optional title line.
type ClassifiedBlock struct {
	StatBlock
	Kind         Kind
	TitleLine    *int // index into Lines, nil if no title line
	HeaderExtent int
}

// DataLines returns the lines following the title line (if any) and header
// extent — the rows a Table Constructor tokenizes into table rows.
func (cb ClassifiedBlock) DataLines() []ingest.Line {
	start := cb.HeaderExtent
	if cb.TitleLine != nil {
		start++
	}
	if start > len(cb.Lines) {
		start = len(cb.Lines)
	}
	return cb.Lines[start:]
}

// HeaderLines returns the lines that make up the header extent, excluding
// any title line.
func (cb ClassifiedBlock) HeaderLines() []ingest.Line {
	start := 0
	if cb.TitleLine != nil {
		start = 1
	}
	end := start + cb.HeaderExtent
	if end > len(cb.Lines) {
		end = len(cb.Lines)
	}
	return cb.Lines[start:end]
}
