// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package blocks segments a non-standard file's lines into maximal runs of
// non-blank lines, annotates each run with per-delimiter token statistics,
// and classifies it into a BlockKind. Each phase is a pure function from
// one immutable struct to the next: RawBlock -> StatBlock -> ClassifiedBlock.
package blocks
