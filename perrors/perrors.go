// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package perrors

import "fmt"

// Kind is a constant error naming one failure category. It supports
// errors.Is comparisons on its own, independent of any wrapping Error.
type Kind string

// Error implements the error interface.
func (k Kind) Error() string { return string(k) }

const (
	// UnsupportedFileType is raised when the input's extension or detected
	// MIME type is not plain text.
	UnsupportedFileType = Kind("unsupported file type")

	// ReadError is raised when the underlying byte source cannot be read.
	ReadError = Kind("read error")

	// EncodingError is raised when bytes decode under neither UTF-8 nor
	// latin-1.
	EncodingError = Kind("encoding error")

	// EmptyData is raised when the Standard Parser finds a template header
	// but no data region.
	EmptyData = Kind("empty data")

	// ParsingError is raised when the Non-Standard Parser produces zero
	// tables from a file.
	ParsingError = Kind("parsing error")
)

// Error wraps a Kind with the source path, an optional block range, and a
// human-readable explanation. It unwraps to the Kind so errors.Is(err,
// perrors.EmptyData) works regardless of the wrapping.
type Error struct {
	Kind       Kind
	Path       string
	BlockRange string // e.g. "12..19"; empty when not applicable
	Msg        string
}

func (e *Error) Error() string {
	switch {
	case e.BlockRange != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s: block %s: %s", e.Path, e.Kind, e.BlockRange, e.Msg)
	case e.BlockRange != "":
		return fmt.Sprintf("%s: %s: block %s", e.Path, e.Kind, e.BlockRange)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Msg)
	default:
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Kind }

// New returns an Error for the given kind and path.
func New(kind Kind, path, msg string) *Error {
	return &Error{Kind: kind, Path: path, Msg: msg}
}

// NewBlockError returns an Error that also carries a block range, formatted
// "start..end".
func NewBlockError(kind Kind, path string, start, end int, msg string) *Error {
	return &Error{Kind: kind, Path: path, BlockRange: fmt.Sprintf("%d..%d", start, end), Msg: msg}
}
