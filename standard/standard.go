// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package standard

import (
	"strconv"
	"strings"

	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/lex"
	"github.com/playbymail/paleoparse/perrors"
	"github.com/playbymail/paleoparse/table"
)

// Variable is one parsed row of the Variables section: tab-separated
// name/long_name/.../data_type, in file order.
type Variable struct {
	Name   string
	Fields []string
}

// Parse runs the Standard Parser over a line stream already known to be
// a Standard template. It returns one Table whose attrs carry the
// flattened "section.key" metadata plus any trim warning.
func Parse(lines []ingest.Line, path string) (*table.Table, error) {
	metaLines, dataLines := partition(lines)
	if len(dataLines) == 0 {
		return nil, &perrors.Error{Kind: perrors.EmptyData, Path: path, Msg: "no uncommented data region found"}
	}

	attrs, variables := parseMetadata(metaLines)
	cols, consumedHeader := determineColumns(variables, dataLines)
	if consumedHeader {
		dataLines = dataLines[1:]
	}
	rows, trimmed := buildRows(dataLines, len(cols))
	if trimmed {
		attrs["trim_warning"] = "rows wider than column count were trimmed"
	}

	return &table.Table{
		Columns: cols,
		Rows:    rows,
		Attrs:   attrs,
	}, nil
}

// partition splits lines into the commented metadata region and the final
// maximal uncommented trailing block, which is the data region — commented
// and uncommented lines may interleave anywhere above that trailing block.
func partition(lines []ingest.Line) (meta, data []ingest.Line) {
	end := len(lines)
	for end > 0 && lines[end-1].Blank() {
		end--
	}
	start := end
	for start > 0 && !lines[start-1].Blank() && !isCommented(lines[start-1]) {
		start--
	}
	data = lines[start:end]
	for _, l := range lines[:start] {
		if isCommented(l) {
			meta = append(meta, l)
		}
	}
	return meta, data
}

func isCommented(l ingest.Line) bool {
	return strings.HasPrefix(l.Stripped, "#")
}

// parseMetadata walks commented lines top-to-bottom, tracking a current
// section name. "# Section" lines (a single bare token, no colon) switch
// section; "# key: value" lines record a flattened attr; "##"-prefixed
// lines are tab-separated variable records, whatever the current section.
func parseMetadata(meta []ingest.Line) (map[string]string, []Variable) {
	attrs := map[string]string{}
	var variables []Variable
	section := ""

	for _, l := range meta {
		body := strings.TrimLeft(l.Stripped, "#")
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}

		if strings.HasPrefix(l.Stripped, "##") {
			fields := strings.Split(strings.TrimPrefix(l.Stripped, "##"), "\t")
			for i := range fields {
				fields[i] = strings.TrimSpace(fields[i])
			}
			if len(fields) > 0 && fields[0] != "" {
				variables = append(variables, Variable{Name: fields[0], Fields: fields})
			}
			continue
		}

		if key, value, ok := strings.Cut(body, ":"); ok {
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.TrimSpace(value)
			attrKey := key
			if section != "" {
				attrKey = section + "." + key
			}
			attrs[attrKey] = value
			continue
		}

		// A bare "# Word" line with no colon names the current section.
		if fields := strings.Fields(body); len(fields) == 1 {
			section = fields[0]
		}
	}
	return attrs, variables
}

// determineColumns prefers Variables-section names, falls back to
// tokenizing the first data line when every token is non-numeric — in
// which case that line is a header, not data, and consumedHeader reports
// so the caller excludes it from the rows — and otherwise emits
// placeholder names.
func determineColumns(variables []Variable, dataLines []ingest.Line) (cols []table.ColumnSpec, consumedHeader bool) {
	if len(variables) > 0 {
		cols = make([]table.ColumnSpec, len(variables))
		for i, v := range variables {
			cols[i] = table.ColumnSpec{Name: v.Name}
		}
		return cols, false
	}

	if len(dataLines) > 0 {
		toks := strings.Split(dataLines[0].Raw, "\t")
		allNonNumeric := true
		for _, tk := range toks {
			if lex.IsNumericLike(strings.TrimSpace(tk)) {
				allNonNumeric = false
				break
			}
		}
		if allNonNumeric {
			cols = make([]table.ColumnSpec, len(toks))
			for i, tk := range toks {
				cols[i] = table.ColumnSpec{Name: strings.TrimSpace(tk)}
			}
			return cols, true
		}
	}

	width := 0
	for _, l := range dataLines {
		if n := len(strings.Split(l.Raw, "\t")); n > width {
			width = n
		}
	}
	cols = make([]table.ColumnSpec, width)
	for i := range cols {
		cols[i] = table.ColumnSpec{Name: "unnamed_" + strconv.Itoa(i)}
	}
	return cols, false
}

// buildRows splits each data line on tab and applies the three width
// cases (exact, short, long), reporting whether any row was trimmed.
func buildRows(dataLines []ingest.Line, width int) (rows []table.Row, trimmed bool) {
	maxLen := 0
	split := make([][]string, len(dataLines))
	for i, l := range dataLines {
		split[i] = strings.Split(l.Raw, "\t")
		if n := len(split[i]); n > maxLen {
			maxLen = n
		}
	}

	rows = make([]table.Row, len(dataLines))
	for i, fields := range split {
		row := make(table.Row, width)
		switch {
		case maxLen == width:
			for j := 0; j < width && j < len(fields); j++ {
				row[j] = strPtr(fields[j])
			}
		case maxLen < width:
			for j := 0; j < len(fields) && j < width; j++ {
				row[j] = strPtr(fields[j])
			}
		default: // maxLen > width
			trimmed = true
			for j := 0; j < width; j++ {
				if j < len(fields) {
					row[j] = strPtr(fields[j])
				}
			}
		}
		rows[i] = row
	}
	return rows, trimmed
}

func strPtr(s string) *string { return &s }
