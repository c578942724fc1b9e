package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure of the permute flow.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindNotFound
	KindLoad
	KindWrite
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrNotFound   = errors.New("input file not found")
	ErrLoad       = errors.New("load error")
	ErrWrite      = errors.New("write error")
	ErrUnexpected = errors.New("unexpected error")
)

var (
	ErrUnknownFileType  = errors.New("invalid file type")
	ErrInvalidDelimiter = errors.New("delimiter must be a single character other than NUL, quote, CR or LF")
	ErrNoColumns        = errors.New("no columns to parse from file")
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindLoad:
		return "load"
	case KindWrite:
		return "write"
	default:
		return "unexpected"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindLoad:
		return ErrLoad
	case KindWrite:
		return ErrWrite
	default:
		return ErrUnexpected
	}
}

// Error is the error type returned by Load, Write and Permute.
type Error struct {
	Kind   ErrorKind
	Path   string
	Format string // format label, e.g. "CSV"; empty when unknown
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("input file not found: %s", e.Path)
	case KindLoad:
		return fmt.Sprintf("error reading %sfile: %v", formatPrefix(e.Format), e.Err)
	case KindWrite:
		return fmt.Sprintf("error writing %sfile: %v", formatPrefix(e.Format), e.Err)
	default:
		return fmt.Sprintf("an unexpected error occurred: %v", e.Err)
	}
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

func formatPrefix(label string) string {
	if label == "" {
		return ""
	}
	return label + " "
}

// KindOf returns the kind of err, or KindUnexpected if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

func loadError(path, label string, err error) error {
	return &Error{Kind: KindLoad, Path: path, Format: label, Err: err}
}

func writeError(path, label string, err error) error {
	return &Error{Kind: KindWrite, Path: path, Format: label, Err: err}
}
