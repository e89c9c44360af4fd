package catalog

import (
	"errors"
	"fmt"

	"uitext-generator/internal/diagnostic"
)

var (
	// ErrEmptyDocument is returned for a catalog file without any content.
	ErrEmptyDocument = errors.New("catalog is empty; expected a mapping of key to entry")
	// ErrNotMapping is returned when the top level is not a key/entry mapping.
	ErrNotMapping = errors.New("top level must be a mapping of key to entry")
	// ErrEntryNotMapping is returned when an entry value is not a mapping.
	ErrEntryNotMapping = errors.New("entry must be a mapping with text and comment")
	// ErrDuplicateKey is returned when a key (or an entry field) appears twice.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrMissingField is returned for an entry lacking text or comment.
	ErrMissingField = errors.New("missing required field")
	// ErrNotString is returned for a text or comment that is not a string.
	ErrNotString = errors.New("value must be a string")
	// ErrUnsupportedContent is returned for characters that cannot be
	// embedded verbatim in the generated header.
	ErrUnsupportedContent = errors.New("unsupported content")
)

func parseErrorf(source string, line int, format string, args ...any) error {
	return diagnostic.Parse(source, line, fmt.Errorf(format, args...))
}

func schemaError(source, key, field string, line int, err error) error {
	de := diagnostic.Schema(key, field, line, err)
	de.Path = source

	return de
}
