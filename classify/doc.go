// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package classify implements the Template Classifier: a cheap scan of a
// file's leading lines that decides whether it follows the NOAA commented
// metadata template (Standard) or not (Non-Standard).
package classify
