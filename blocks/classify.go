// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package blocks

import (
	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/lex"
)

// Thresholds tunes the Block Classifier's rule table. The parser passes
// DefaultThresholds; the matching fields of internal/config are not read.
type Thresholds struct {
	NarrativeNumericRatio float64
	HeaderOnlyMaxLines    int
}

// DefaultThresholds returns the classifier's default tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{NarrativeNumericRatio: 0.3, HeaderOnlyMaxLines: 5}
}

// Classify applies the first-match-wins rule table and fills in the
// header extent and optional title line.
func Classify(sb StatBlock, th Thresholds) ClassifiedBlock {
	headerExtent, title := DetectHeaderExtent(sb.Lines)

	ratio := sb.Stats.MeanNumericRatio
	modeMulti := sb.Stats.ModeTokenCount[lex.MultiSpace]
	cvMulti := sb.Stats.CVTokenCount[lex.MultiSpace]
	lineCount := len(sb.Lines)

	var kind Kind
	switch {
	case ratio < th.NarrativeNumericRatio && modeMulti == 1:
		kind = Narrative
		headerExtent, title = 0, nil
	case ratio < th.NarrativeNumericRatio && modeMulti > 1 && lineCount < th.HeaderOnlyMaxLines:
		kind = HeaderOnly
	case cvMulti == 0 && modeMulti > 1:
		kind = CompleteTabular
	case cvMulti > 0 && headerExtent > 0:
		kind = CompleteTabular
	case cvMulti > 0 && headerExtent == 0:
		kind = DataOnly
	default:
		// No rule matched (e.g. a block of single-token numeric lines): treat
		// as narrative so the Table Constructor leaves it alone.
		kind = Narrative
		headerExtent, title = 0, nil
	}

	return ClassifiedBlock{StatBlock: sb, Kind: kind, TitleLine: title, HeaderExtent: headerExtent}
}

// DetectHeaderExtent scans a block's lines from the top and returns the
// number of leading lines that qualify as header rows, plus the index of a
// title line when one precedes them.
//
// A line qualifies as a header line when it has no numeric tokens and its
// multi-space token count is at least the mode token count of the block's
// data lines — the lines that do contain a numeric token, and so cannot
// themselves be headers. That makes "the trailing data portion" well
// defined without requiring header_extent itself as an input.
func DetectHeaderExtent(lines []ingest.Line) (extent int, titleLine *int) {
	n := len(lines)
	if n == 0 {
		return 0, nil
	}

	counts := make([]int, n)
	numeric := make([]bool, n)
	for i, l := range lines {
		toks := lex.Tokenize(l.Expanded, lex.MultiSpace)
		counts[i] = len(toks)
		for _, tk := range toks {
			if lex.IsNumericLike(tk.Text) {
				numeric[i] = true
				break
			}
		}
	}

	var dataCounts []int
	for i := range lines {
		if numeric[i] {
			dataCounts = append(dataCounts, counts[i])
		}
	}
	dataMode := mode(dataCounts)

	qualifies := func(i int) bool {
		return !numeric[i] && counts[i] >= dataMode
	}
	runFrom := func(start int) int {
		run := 0
		for i := start; i < n; i++ {
			if !qualifies(i) {
				break
			}
			run++
		}
		return run
	}

	if n > 1 && counts[0] == 1 && !numeric[0] {
		if rest := runFrom(1); rest > 0 {
			idx := 0
			return rest, &idx
		}
	}
	return runFrom(0), nil
}
