// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package blocks

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/lex"
)

var allDelimiters = []lex.Delimiter{lex.SingleSpace, lex.MultiSpace, lex.Tab}

// Stat computes per-delimiter token statistics for a RawBlock.
func Stat(rb RawBlock) StatBlock {
	return StatBlock{RawBlock: rb, Stats: computeStats(rb.Lines)}
}

func computeStats(lines []ingest.Line) Stats {
	s := Stats{
		ModeTokenCount:     map[lex.Delimiter]int{},
		CVTokenCount:       map[lex.Delimiter]float64{},
		PerLineTokenCounts: map[lex.Delimiter][]int{},
	}
	for _, d := range allDelimiters {
		counts := make([]int, len(lines))
		for i, l := range lines {
			counts[i] = len(lex.Tokenize(delimiterSource(l, d), d))
		}
		s.PerLineTokenCounts[d] = counts
		s.ModeTokenCount[d] = mode(counts)
		s.CVTokenCount[d] = coefficientOfVariation(counts)
	}
	s.MeanNumericRatio = meanNumericRatio(lines)
	return s
}

// delimiterSource picks the string a delimiter hypothesis tokenizes: the
// tab-expanded text for the space-based hypotheses (so columns are
// well-defined), the literal unexpanded text for the tab hypothesis (so a
// real tab character is required to split fields).
func delimiterSource(l ingest.Line, d lex.Delimiter) string {
	if d == lex.Tab {
		return l.Raw
	}
	return l.Expanded
}

func meanNumericRatio(lines []ingest.Line) float64 {
	var ratios []float64
	for _, l := range lines {
		toks := lex.Tokenize(l.Expanded, lex.MultiSpace)
		if len(toks) == 0 {
			continue
		}
		numeric := 0
		for _, tk := range toks {
			if lex.IsNumericLike(tk.Text) {
				numeric++
			}
		}
		ratios = append(ratios, float64(numeric)/float64(len(toks)))
	}
	if len(ratios) == 0 {
		return 0
	}
	return stat.Mean(ratios, nil)
}

// coefficientOfVariation is stddev/mean over a series of integer token
// counts; it is 0 for an empty or constant series.
func coefficientOfVariation(counts []int) float64 {
	if len(counts) < 2 {
		return 0
	}
	xs := make([]float64, len(counts))
	for i, c := range counts {
		xs[i] = float64(c)
	}
	mean := stat.Mean(xs, nil)
	if mean == 0 {
		return 0
	}
	sd := stat.StdDev(xs, nil)
	if sd == 0 {
		return 0
	}
	return sd / mean
}

// mode returns the most common value in xs, preferring the lowest value on
// a tie. Returns 0 for an empty series.
func mode(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	counts := map[int]int{}
	for _, x := range xs {
		counts[x]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	best, bestCount := keys[0], 0
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

// DataCV is the coefficient of variation of multi-space token counts over
// the lines following a header extent — the "sub-block CV" passed to
// table.FromBlock to choose between direct and overlap row construction.
// Classify does not use it: its rules 4 and 5 both yield CompleteTabular.
func DataCV(lines []ingest.Line) float64 {
	counts := make([]int, len(lines))
	for i, l := range lines {
		counts[i] = len(lex.Tokenize(l.Expanded, lex.MultiSpace))
	}
	return coefficientOfVariation(counts)
}
