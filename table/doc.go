// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package table defines the shared tabular data model (Table, ColumnSpec,
// Row) and the Table Constructor: multi-line header merging, direct
// positional row construction, and visual-interval overlap assignment for
// ragged rows.
package table
