package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"uitext-generator/internal/diagnostic"
)

// DefaultMarker prefixes every generated constant name.
const DefaultMarker = "s"

var (
	// ErrEmptyKey is returned for a blank catalog key.
	ErrEmptyKey = errors.New("key is empty")
	// ErrInvalidIdentifier is returned when a derived name is not a valid C++ identifier.
	ErrInvalidIdentifier = errors.New("not a valid C++ identifier")
	// ErrCollision is returned when two keys derive the same name.
	ErrCollision = errors.New("identifier collision")
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options control identifier derivation.
type Options struct {
	// Marker is prepended verbatim to every name.
	Marker string
	// CapitalizeFirst upper-cases the first word too (sMainMenuTitle rather
	// than smainMenuTitle).
	CapitalizeFirst bool
}

// DefaultOptions returns the options producing names like sMainMenuTitle.
func DefaultOptions() Options {
	return Options{
		Marker:          DefaultMarker,
		CapitalizeFirst: true,
	}
}

// Identifier derives the constant name for key. It is pure; validity is
// checked by Assign and Valid.
func Identifier(key string, opts Options) string {
	upper := cases.Upper(language.Und)
	words := strings.Split(cases.Lower(language.Und).String(key), "_")

	var b strings.Builder

	b.WriteString(opts.Marker)

	for i, w := range words {
		if i > 0 || opts.CapitalizeFirst {
			w = upperFirst(upper, w)
		}

		b.WriteString(w)
	}

	return b.String()
}

// upperFirst upper-cases the first character of w and leaves the rest as is.
func upperFirst(upper cases.Caser, w string) string {
	_, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}

	return upper.String(w[:size]) + w[size:]
}

// Valid reports whether id can be used as a C++ identifier. Names containing
// a double underscore are reserved for the implementation and rejected too.
func Valid(id string) bool {
	return identPattern.MatchString(id) && !strings.Contains(id, "__")
}

// Assign derives the identifier of every key, in order. It fails on the
// first empty key, invalid identifier, or collision with an earlier key.
func Assign(keys []string, opts Options) ([]string, error) {
	ids := make([]string, len(keys))
	owner := make(map[string]string, len(keys))

	for i, key := range keys {
		if strings.TrimSpace(key) == "" {
			return nil, diagnostic.Identifier(key, ErrEmptyKey)
		}

		id := Identifier(key, opts)
		if !Valid(id) {
			return nil, diagnostic.Identifier(key, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id))
		}

		if prev, ok := owner[id]; ok {
			return nil, diagnostic.Identifier(key, fmt.Errorf("%w: %q is also derived from %q", ErrCollision, id, prev))
		}

		owner[id] = key
		ids[i] = id
	}

	return ids, nil
}
