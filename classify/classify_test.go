// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package classify_test

import (
	"testing"

	"github.com/playbymail/paleoparse/classify"
	"github.com/playbymail/paleoparse/ingest"
)

func mustLines(t *testing.T, text string) []ingest.Line {
	t.Helper()
	lines, err := ingest.LoadBytes([]byte(text), "sample.txt")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	return lines
}

func TestDetect_DoubleHashIsSentinel(t *testing.T) {
	lines := mustLines(t, "## name\tlong_name\n1\t2\t3\n")
	if got := classify.Detect(lines, nil); got != classify.Standard {
		t.Fatalf("got %s, want standard", got)
	}
}

func TestDetect_VocabularySectionIsSentinel(t *testing.T) {
	lines := mustLines(t, "# Site_Name: Cave One\ndata line here\n")
	if got := classify.Detect(lines, nil); got != classify.Standard {
		t.Fatalf("got %s, want standard", got)
	}
}

func TestDetect_NonStandardPlainText(t *testing.T) {
	lines := mustLines(t, "Depth  Age\n1      10\n2      20\n")
	if got := classify.Detect(lines, nil); got != classify.NonStandard {
		t.Fatalf("got %s, want non-standard", got)
	}
}

func TestDetect_CommentWithoutVocabWordIsNotSentinel(t *testing.T) {
	lines := mustLines(t, "# just a remark, not a section\n1 2 3\n")
	if got := classify.Detect(lines, nil); got != classify.NonStandard {
		t.Fatalf("got %s, want non-standard", got)
	}
}
