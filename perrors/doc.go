// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package perrors defines the typed error kinds raised by the ingestor and
// parsers. Kinds are constant strings so callers can compare with
// errors.Is; the wrapping Error carries the source path and, when known,
// the block range that failed.
package perrors
