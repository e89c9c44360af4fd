package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"uitext-generator/internal/diagnostic"
)

// parseJSON reads the catalog token by token so that key order and line
// numbers survive. The input must be strict JSON: comments, trailing commas
// and unquoted keys are syntax errors.
func parseJSON(data []byte, source string) (*Catalog, error) {
	d := &jsonDecoder{dec: json.NewDecoder(bytes.NewReader(data)), data: data, source: source}

	tok, err := d.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, diagnostic.Parse(source, 0, ErrEmptyDocument)
	}

	if err != nil {
		return nil, d.syntaxError(err)
	}

	if tok != json.Delim('{') {
		return nil, diagnostic.Parse(source, d.line(), ErrNotMapping)
	}

	b := newBuilder(source)

	for d.dec.More() {
		key, err := d.key()
		if err != nil {
			return nil, err
		}

		entry := Entry{Key: key, Line: d.line()}

		if err := d.entry(&entry); err != nil {
			return nil, err
		}

		if err := b.add(entry); err != nil {
			return nil, err
		}
	}

	// Closing brace of the catalog.
	if _, err := d.dec.Token(); err != nil {
		return nil, d.syntaxError(err)
	}

	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, parseErrorf(source, d.line(), "unexpected data after the catalog object")
	}

	return b.cat, nil
}

type jsonDecoder struct {
	dec    *json.Decoder
	data   []byte
	source string
}

// line returns the 1-based line of the decoder's current offset.
func (d *jsonDecoder) line() int {
	return lineAt(d.data, d.dec.InputOffset())
}

func (d *jsonDecoder) key() (string, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return "", d.syntaxError(err)
	}

	key, ok := tok.(string)
	if !ok {
		return "", parseErrorf(d.source, d.line(), "keys must be strings")
	}

	return key, nil
}

func (d *jsonDecoder) entry(entry *Entry) error {
	tok, err := d.dec.Token()
	if err != nil {
		return d.syntaxError(err)
	}

	if tok != json.Delim('{') {
		return parseErrorf(d.source, d.line(), "entry %q: %w", entry.Key, ErrEntryNotMapping)
	}

	seen := map[string]bool{}

	for d.dec.More() {
		field, err := d.key()
		if err != nil {
			return err
		}

		if seen[field] {
			return parseErrorf(d.source, d.line(), "entry %q: %w %q", entry.Key, ErrDuplicateKey, field)
		}

		seen[field] = true

		if field != FieldText && field != FieldComment {
			var skipped json.RawMessage
			if err := d.dec.Decode(&skipped); err != nil {
				return d.syntaxError(err)
			}

			continue
		}

		s, err := d.stringValue(entry.Key, field)
		if err != nil {
			return err
		}

		if field == FieldText {
			entry.Text = s
		} else {
			entry.Comment = s
		}
	}

	if _, err := d.dec.Token(); err != nil {
		return d.syntaxError(err)
	}

	return nil
}

// stringValue reads a field value; null counts as absent.
func (d *jsonDecoder) stringValue(key, field string) (*string, error) {
	var raw json.RawMessage
	if err := d.dec.Decode(&raw); err != nil {
		return nil, d.syntaxError(err)
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, schemaError(d.source, key, field, d.line(), ErrNotString)
	}

	return &s, nil
}

func (d *jsonDecoder) syntaxError(err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return diagnostic.Parse(d.source, lineAt(d.data, se.Offset), err)
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return diagnostic.Parse(d.source, lineAt(d.data, int64(len(d.data))), io.ErrUnexpectedEOF)
	}

	return diagnostic.Parse(d.source, d.line(), err)
}

func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}

	return 1 + bytes.Count(data[:offset], []byte("\n"))
}
