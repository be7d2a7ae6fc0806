// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package standard implements the Standard Parser: extraction of a single
// Table plus flattened metadata from a file that follows the NOAA
// commented-template convention.
package standard
