// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package paleoparse

import (
	"fmt"

	"github.com/playbymail/paleoparse/blocks"
	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/lex"
	"github.com/playbymail/paleoparse/table"
)

// parseNonStandard runs the Block Segmenter, Block Statistician, Block
// Classifier, and Table Constructor over a Non-Standard line stream,
// adopting data-only blocks against the nearest preceding header-only
// block.
func parseNonStandard(lines []ingest.Line, path string, th blocks.Thresholds) ([]*table.Table, error) {
	raw := blocks.Segment(lines)
	classified := make([]blocks.ClassifiedBlock, len(raw))
	for i, rb := range raw {
		classified[i] = blocks.Classify(blocks.Stat(rb), th)
	}

	var tables []*table.Table
	for i, cb := range classified {
		switch cb.Kind {
		case blocks.CompleteTabular:
			tables = append(tables, buildTable(cb, path))
		case blocks.DataOnly:
			if tbl := adoptOrphan(classified, i, path); tbl != nil {
				tables = append(tables, tbl)
			}
		}
	}
	return tables, nil
}

func buildTable(cb blocks.ClassifiedBlock, path string) *table.Table {
	header := cb.HeaderLines()
	data := cb.DataLines()
	cv := blocks.DataCV(data)
	tbl := table.FromBlock(header, data, lex.MultiSpace, cv)
	tbl.Attrs["source_block_range"] = fmt.Sprintf("%d..%d", cb.Start, cb.End)
	if cb.TitleLine != nil {
		tbl.Attrs["title"] = cb.Lines[*cb.TitleLine].Stripped
	}
	return tbl
}

// adoptOrphan scans backward from a data-only block for the nearest
// header-only block and overlap-assigns against its headers, preferring
// direct construction when the data's mode token count matches the
// header's column count under some delimiter.
func adoptOrphan(classified []blocks.ClassifiedBlock, at int, path string) *table.Table {
	var header *blocks.ClassifiedBlock
	for i := at - 1; i >= 0; i-- {
		if classified[i].Kind == blocks.HeaderOnly {
			header = &classified[i]
			break
		}
	}
	if header == nil {
		return nil
	}

	cb := classified[at]
	cols := table.ExtractHeaders(header.Lines)
	data := cb.Lines

	direct := false
	for _, d := range []lex.Delimiter{lex.SingleSpace, lex.MultiSpace, lex.Tab} {
		if cb.Stats.ModeTokenCount[d] == len(cols) {
			direct = true
			break
		}
	}

	var rows []table.Row
	if direct {
		rows = table.Direct(cols, data, lex.MultiSpace)
	} else {
		rows = table.Overlap(cols, data, lex.MultiSpace)
	}

	return &table.Table{
		Columns: cols,
		Rows:    rows,
		Attrs: map[string]string{
			"source_block_range": fmt.Sprintf("%d..%d", cb.Start, cb.End),
			"adopted_header_range": fmt.Sprintf("%d..%d", header.Start, header.End),
		},
	}
}
