// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package paleoparse is the public facade over the parser pipeline:
// Template Classifier, Standard Parser, and the Block Segmenter / Block
// Statistician / Block Classifier / Table Constructor chain used for
// Non-Standard files.
package paleoparse
