// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package paleoparse

import (
	"github.com/maloquacious/semver"

	"github.com/playbymail/paleoparse/blocks"
	"github.com/playbymail/paleoparse/classify"
	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/perrors"
	"github.com/playbymail/paleoparse/standard"
	"github.com/playbymail/paleoparse/table"
)

// Version identifies this parser build.
var Version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

// ParseFile loads path from disk and parses it into zero or more Tables.
func ParseFile(path string) ([]*table.Table, error) {
	lines, err := ingest.Load(path)
	if err != nil {
		return nil, err
	}
	return parse(lines, path)
}

// ParseBytes parses an in-memory buffer; filenameHint is used only to
// validate the supported-extension rule.
func ParseBytes(data []byte, filenameHint string) ([]*table.Table, error) {
	lines, err := ingest.LoadBytes(data, filenameHint)
	if err != nil {
		return nil, err
	}
	return parse(lines, filenameHint)
}

func parse(lines []ingest.Line, path string) ([]*table.Table, error) {
	if classify.Detect(lines, nil) == classify.Standard {
		tbl, err := standard.Parse(lines, path)
		if err != nil {
			return nil, err
		}
		tbl.Attrs["parser_version"] = Version.Short()
		return []*table.Table{tbl}, nil
	}

	tables, err := parseNonStandard(lines, path, blocks.DefaultThresholds())
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, &perrors.Error{Kind: perrors.ParsingError, Path: path, Msg: "no tables produced"}
	}
	for _, tbl := range tables {
		tbl.Attrs["parser_version"] = Version.Short()
	}
	return tables, nil
}
