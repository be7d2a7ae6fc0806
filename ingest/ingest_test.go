// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ingest_test

import (
	"errors"
	"testing"

	"github.com/go-test/deep"

	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/perrors"
)

func TestLoadBytes_RejectsNonTxt(t *testing.T) {
	_, err := ingest.LoadBytes([]byte("a\tb\n"), "sample.csv")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, perrors.UnsupportedFileType) {
		t.Errorf("got %v, want UnsupportedFileType", err)
	}
}

func TestLoadBytes_TabExpansion(t *testing.T) {
	lines, err := ingest.LoadBytes([]byte("a\tb\tc\n"), "sample.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Raw != "a\tb\tc" {
		t.Errorf("raw = %q, want literal tabs preserved", lines[0].Raw)
	}
	want := "a       b       c"
	if lines[0].Expanded != want {
		t.Errorf("expanded = %q, want %q", lines[0].Expanded, want)
	}
}

func TestLoadBytes_StripsCR(t *testing.T) {
	lines, err := ingest.LoadBytes([]byte("one\r\ntwo\r\n"), "sample.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []ingest.Line{
		{Index: 0, Raw: "one", Expanded: "one", Stripped: "one"},
		{Index: 1, Raw: "two", Expanded: "two", Stripped: "two"},
	}
	if diff := deep.Equal(lines, want); diff != nil {
		t.Error(diff)
	}
}

func TestLoadBytes_LatinOneFallback(t *testing.T) {
	// 0xE9 is "é" under latin-1; invalid as standalone UTF-8.
	data := []byte("Contributor: Jos\xe9\n")
	lines, err := ingest.LoadBytes(data, "sample.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Contributor: José"
	if lines[0].Raw != want {
		t.Errorf("raw = %q, want %q", lines[0].Raw, want)
	}
}

func TestLoadBytes_LeadingWhitespaceCount(t *testing.T) {
	lines, err := ingest.LoadBytes([]byte("   indented\n"), "sample.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines[0].LeadingWS != 3 {
		t.Errorf("leading ws = %d, want 3", lines[0].LeadingWS)
	}
}
