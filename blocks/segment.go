// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package blocks

import "github.com/playbymail/paleoparse/ingest"

// Segment splits lines into maximal runs of non-blank lines. A blank line
// (one whose stripped text is empty) terminates the current run;
// consecutive blank lines coalesce. No zero-length block is ever emitted.
func Segment(lines []ingest.Line) []RawBlock {
	var out []RawBlock
	var cur []ingest.Line
	for _, l := range lines {
		if l.Blank() {
			if len(cur) > 0 {
				out = append(out, newRawBlock(cur))
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, newRawBlock(cur))
	}
	return out
}

func newRawBlock(lines []ingest.Line) RawBlock {
	cp := make([]ingest.Line, len(lines))
	copy(cp, lines)
	return RawBlock{Start: cp[0].Index, End: cp[len(cp)-1].Index, Lines: cp}
}
