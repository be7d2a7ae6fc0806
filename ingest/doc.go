// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package ingest loads file bytes, detects their encoding, expands tabs to
// fixed column stops, and splits the result into a sequence of Lines. It is
// the only component that touches raw bytes; everything downstream works
// against []Line.
package ingest
