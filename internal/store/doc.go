// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package store implements a sqlite-backed cache of parsed Tables and
// search-service responses, keyed by content checksum so repeated runs
// over the same file skip re-parsing.
package store
