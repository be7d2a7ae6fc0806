// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package classify

import (
	"strings"

	"github.com/playbymail/paleoparse/ingest"
)

// ScanWindow is the number of leading lines the classifier inspects.
const ScanWindow = 200

// Template labels a file's overall shape.
type Template int

const (
	NonStandard Template = iota
	Standard
)

func (t Template) String() string {
	if t == Standard {
		return "standard"
	}
	return "non-standard"
}

// Vocabulary is the set of section names that mark a "# Name" line as a
// template sentinel. A non-nil vocab passed to Detect replaces it;
// DefaultVocabulary is the minimum set NOAA template files use.
var DefaultVocabulary = map[string]bool{
	"Site_Name":     true,
	"Variables":     true,
	"Data":          true,
	"Title":         true,
	"Investigators": true,
}

// Detect classifies a line stream as Standard or Non-Standard by scanning
// its first ScanWindow lines for a NOAA template sentinel: any line
// starting with "##", or any line starting with "# " whose next token
// appears in vocab.
func Detect(lines []ingest.Line, vocab map[string]bool) Template {
	if vocab == nil {
		vocab = DefaultVocabulary
	}
	n := len(lines)
	if n > ScanWindow {
		n = ScanWindow
	}
	for _, l := range lines[:n] {
		if isSentinel(l.Stripped, vocab) {
			return Standard
		}
	}
	return NonStandard
}

func isSentinel(line string, vocab map[string]bool) bool {
	if strings.HasPrefix(line, "##") {
		return true
	}
	if !strings.HasPrefix(line, "# ") {
		return false
	}
	rest := strings.TrimSpace(line[2:])
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return false
	}
	name := strings.TrimSuffix(fields[0], ":")
	return vocab[name]
}
