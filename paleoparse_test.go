// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package paleoparse_test

import (
	"testing"

	"github.com/go-test/deep"

	paleoparse "github.com/playbymail/paleoparse"
)

func TestParseBytes_UniformNonStandardTable(t *testing.T) {
	text := "Depth  Age  d18O\n" +
		"1      10   -5.1\n" +
		"2      20   -5.3\n" +
		"3      30   -5.5\n" +
		"4      40   -5.7\n" +
		"5      50   -5.9\n" +
		"6      60   -6.1\n" +
		"7      70   -6.3\n" +
		"8      80   -6.5\n" +
		"9      90   -6.7\n"

	tables, err := paleoparse.ParseBytes([]byte(text), "sample.txt")
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if diff := deep.Equal(tables[0].ColumnNames(), []string{"Depth", "Age", "d18O"}); diff != nil {
		t.Errorf("columns: %v", diff)
	}
	if len(tables[0].Rows) != 9 {
		t.Errorf("got %d rows, want 9", len(tables[0].Rows))
	}
}

// Scenario F: a header-only block followed by a data-only block adopts
// the preceding headers.
func TestParseBytes_OrphanDataAdoptsPrecedingHeader(t *testing.T) {
	text := "Depth  Age\n" +
		"\n" +
		"10   -5.1\n" +
		"20   -5.3   3.2\n" +
		"30   -5.9\n"

	tables, err := paleoparse.ParseBytes([]byte(text), "sample.txt")
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if diff := deep.Equal(tables[0].ColumnNames(), []string{"Depth", "Age"}); diff != nil {
		t.Errorf("columns: %v", diff)
	}
	if len(tables[0].Rows) != 3 {
		t.Errorf("got %d rows, want 3", len(tables[0].Rows))
	}
}

func TestParseBytes_StandardTemplateRoutesThroughStandardParser(t *testing.T) {
	text := "# Site_Name: Cave One\n" +
		"# Variables\n" +
		"## depth\tDepth\twhat\tmaterial\terror\tm\tseasonality\tarchive\tdetail\tmethod\tnumeric\n" +
		"1\n2\n"

	tables, err := paleoparse.ParseBytes([]byte(text), "sample.txt")
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if diff := deep.Equal(tables[0].ColumnNames(), []string{"depth"}); diff != nil {
		t.Errorf("columns: %v", diff)
	}
}

func TestParseBytes_RejectsNonTxt(t *testing.T) {
	_, err := paleoparse.ParseBytes([]byte("x"), "sample.csv")
	if err == nil {
		t.Fatal("want error")
	}
}
