package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind classifies a fatal diagnostic.
type Kind int

const (
	_ Kind = iota // zero value is reserved for "not a diagnostic"

	KindIO         // io
	KindParse      // parse
	KindSchema     // schema
	KindIdentifier // identifier
)

// Process exit codes, one per Kind plus the generic ones.
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsage      = 2
	ExitIO         = 3
	ExitParse      = 4
	ExitSchema     = 5
	ExitIdentifier = 6
)

// Error is a fatal diagnostic. Path and Line locate the problem in a file,
// Key and Field locate it inside the catalog. Any of them may be empty.
type Error struct {
	Kind  Kind
	Path  string
	Line  int
	Key   string
	Field string
	Err   error
}

// IO reports a failure to read or write path.
func IO(path string, err error) *Error {
	return &Error{Kind: KindIO, Path: path, Err: err}
}

// Parse reports malformed content in path. Line is 0 when unknown.
func Parse(path string, line int, err error) *Error {
	return &Error{Kind: KindParse, Path: path, Line: line, Err: err}
}

// Schema reports a problem with one field of one catalog entry.
func Schema(key, field string, line int, err error) *Error {
	return &Error{Kind: KindSchema, Key: key, Field: field, Line: line, Err: err}
}

// Identifier reports a key that cannot be turned into a constant name.
func Identifier(key string, err error) *Error {
	return &Error{Kind: KindIdentifier, Key: key, Err: err}
}

// Error returns a one-line description, e.g.
//
//	schema error at line 3: entry "GREETING", field "comment": missing required field
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Kind.String())
	b.WriteString(" error")

	switch {
	case e.Path != "" && e.Line > 0:
		fmt.Fprintf(&b, " in %s:%d", e.Path, e.Line)
	case e.Path != "":
		fmt.Fprintf(&b, " in %s", e.Path)
	case e.Line > 0:
		fmt.Fprintf(&b, " at line %d", e.Line)
	}

	var subject []string
	if e.Key != "" {
		subject = append(subject, fmt.Sprintf("entry %q", e.Key))
	}

	if e.Field != "" {
		subject = append(subject, fmt.Sprintf("field %q", e.Field))
	}

	if len(subject) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(subject, ", "))
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}

	return 0
}

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch KindOf(err) {
	case KindIO:
		return ExitIO
	case KindParse:
		return ExitParse
	case KindSchema:
		return ExitSchema
	case KindIdentifier:
		return ExitIdentifier
	default:
		return ExitFailure
	}
}

// WithPath records path on the *Error in err's chain unless it already
// names a file. Err is returned unchanged.
func WithPath(err error, path string) error {
	var de *Error
	if errors.As(err, &de) && de.Path == "" {
		de.Path = path
	}

	return err
}
