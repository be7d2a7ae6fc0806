// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package lex tokenizes a line under one of three delimiter hypotheses —
// single-space, multi-space, or tab — yielding (text, start, end) triples
// in a single pass rather than splitting and re-scanning for positions.
package lex
