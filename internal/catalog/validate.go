package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"uitext-generator/internal/diagnostic"
)

// ValidateEntry checks that e has both required fields and that their
// content can be embedded in the header as-is. The returned error is a
// diagnostic.KindSchema naming the key and field.
//
// Text is placed verbatim between double quotes, so quotes, backslashes and
// control characters are rejected rather than escaped. Comment ends up in a
// line comment, so it may not contain control characters or end in a
// backslash (which would splice the next line into the comment).
func ValidateEntry(e Entry) error {
	if e.Text == nil {
		return diagnostic.Schema(e.Key, FieldText, e.Line, ErrMissingField)
	}

	if e.Comment == nil {
		return diagnostic.Schema(e.Key, FieldComment, e.Line, ErrMissingField)
	}

	if i := strings.IndexFunc(*e.Text, unsupportedInText); i >= 0 {
		return diagnostic.Schema(e.Key, FieldText, e.Line, unsupportedAt(*e.Text, i))
	}

	if i := strings.IndexFunc(*e.Comment, unicode.IsControl); i >= 0 {
		return diagnostic.Schema(e.Key, FieldComment, e.Line, unsupportedAt(*e.Comment, i))
	}

	if strings.HasSuffix(*e.Comment, `\`) {
		return diagnostic.Schema(e.Key, FieldComment, e.Line,
			fmt.Errorf("%w: trailing backslash", ErrUnsupportedContent))
	}

	return nil
}

func unsupportedInText(r rune) bool {
	return r == '"' || r == '\\' || unicode.IsControl(r)
}

func unsupportedAt(s string, i int) error {
	r := []rune(s[i:])[0]
	return fmt.Errorf("%w: %q at byte %d", ErrUnsupportedContent, r, i)
}
