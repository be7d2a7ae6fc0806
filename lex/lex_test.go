// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lex_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/playbymail/paleoparse/lex"
)

func TestTokenize_SingleSpace(t *testing.T) {
	got := lex.Tokenize("Depth  Age  d18O", lex.SingleSpace)
	want := []lex.Token{
		{Text: "Depth", Start: 0, End: 5},
		{Text: "Age", Start: 7, End: 10},
		{Text: "d18O", Start: 12, End: 16},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestTokenize_MultiSpace_AbsorbsInternalSingleSpace(t *testing.T) {
	got := lex.Tokenize("Sample ID      238U  235U", lex.MultiSpace)
	want := []lex.Token{
		{Text: "Sample ID", Start: 0, End: 9},
		{Text: "238U", Start: 15, End: 19},
		{Text: "235U", Start: 21, End: 25},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestTokenize_Tab_PreservesEmptyFields(t *testing.T) {
	got := lex.Tokenize("age\tage\t\tyears BP", lex.Tab)
	if len(got) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(got), got)
	}
	if got[2].Text != "" {
		t.Errorf("token[2] = %q, want empty field", got[2].Text)
	}
	if got[3].Text != "years BP" {
		t.Errorf("token[3] = %q, want %q", got[3].Text, "years BP")
	}
}

func TestIsNumericLike(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1000", true},
		{"-5.1", true},
		{"+3.14e-2", true},
		{".5", true},
		{"NaN", true},
		{"na", true},
		{"-", true},
		{"–", true},
		{"age", false},
		{"", false},
		{"12a", false},
	}
	for _, c := range cases {
		if got := lex.IsNumericLike(c.in); got != c.want {
			t.Errorf("IsNumericLike(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
