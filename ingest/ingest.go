// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/playbymail/paleoparse/perrors"
)

// TabWidth is the fixed column width tab characters expand to. Expansion
// is sticky: once a line's columns have been computed under this width,
// every downstream component (tokenizer, overlap assignment) reuses those
// columns rather than re-scanning the raw bytes.
const TabWidth = 8

// Line is an immutable physical line produced by the Ingestor. Index is
// 0-based. Raw is the line's literal text with only the trailing \r
// stripped — it keeps any tab characters intact so the Standard Parser can
// split data lines on \t. Expanded is Raw with tabs expanded to TabWidth
// column stops; every column-based component (tokenizer intervals, overlap
// assignment) reads positions from Expanded, never from Raw. Stripped
// trims leading and trailing whitespace from Raw. LeadingWS is the count
// of leading whitespace characters in Raw.
type Line struct {
	Index     int
	Raw       string
	Expanded  string
	Stripped  string
	LeadingWS int
}

// Blank reports whether the line is empty once stripped.
func (l Line) Blank() bool { return l.Stripped == "" }

// Load reads a file from disk and ingests it. The filename's extension
// must be .txt (case-insensitive); files whose hinted type is not plain
// text are rejected with UnsupportedFileType.
func Load(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &perrors.Error{Kind: perrors.ReadError, Path: path, Msg: err.Error()}
	}
	return LoadBytes(data, path)
}

// LoadBytes ingests an in-memory buffer using filenameHint only to check
// the supported-extension rule; the bytes themselves are never re-read
// from disk.
func LoadBytes(data []byte, filenameHint string) ([]Line, error) {
	if ext := strings.ToLower(filepath.Ext(filenameHint)); ext != ".txt" {
		return nil, &perrors.Error{Kind: perrors.UnsupportedFileType, Path: filenameHint, Msg: "extension " + ext + " is not .txt"}
	}

	text, err := decode(data)
	if err != nil {
		return nil, &perrors.Error{Kind: perrors.EncodingError, Path: filenameHint, Msg: err.Error()}
	}

	rawLines := strings.Split(text, "\n")
	// A final newline terminates the last line; it does not start another.
	if n := len(rawLines); n > 1 && rawLines[n-1] == "" {
		rawLines = rawLines[:n-1]
	}
	lines := make([]Line, 0, len(rawLines))
	for i, raw := range rawLines {
		raw = strings.TrimSuffix(raw, "\r")
		lines = append(lines, Line{
			Index:     i,
			Raw:       raw,
			Expanded:  expandTabs(raw, TabWidth),
			Stripped:  strings.TrimSpace(raw),
			LeadingWS: leadingWhitespace(raw),
		})
	}
	return lines, nil
}

// decode prefers UTF-8 and falls back to latin-1 on decode error; it never
// fails on encoding.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// expandTabs replaces each tab with spaces out to the next width-column
// stop, operating on runes so that column math downstream is well-defined.
func expandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := width - (col % width)
			for i := 0; i < pad; i++ {
				b.WriteByte(' ')
			}
			col += pad
		} else {
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

func leadingWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if r == ' ' || r == '\t' {
			n++
		} else {
			break
		}
	}
	return n
}
