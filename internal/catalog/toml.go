package catalog

import (
	"errors"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"

	"uitext-generator/internal/diagnostic"
)

// parseTOML reads one table per entry, or one inline table per entry:
//
//	[MAIN_MENU_TITLE]
//	text = "Checkers"
//	comment = "Title shown on the main menu"
//
//	OK = { text = "OK", comment = "Confirmation label" }
//
// The streaming parser is used because decoding into a map loses table order.
func parseTOML(data []byte, source string) (*Catalog, error) {
	d := &tomlDecoder{source: source}
	d.p.Reset(data)

	b := newBuilder(source)

	var (
		current *tomlEntry
		exprs   int
	)

	flush := func() error {
		if current == nil {
			return nil
		}

		err := b.add(current.Entry)
		current = nil

		return err
	}

	for d.p.NextExpression() {
		expr := d.p.Expression()
		exprs++

		line := d.line(expr.Key())

		switch expr.Kind {
		case unstable.Table:
			key := tomlKey(expr.Key())
			if len(key) != 1 {
				return nil, parseErrorf(source, line, "table [%s]: nested tables are not supported", strings.Join(key, "."))
			}

			if err := flush(); err != nil {
				return nil, err
			}

			current = newTOMLEntry(key[0], line)

		case unstable.ArrayTable:
			return nil, parseErrorf(source, line, "[[%s]]: %w", strings.Join(tomlKey(expr.Key()), "."), ErrEntryNotMapping)

		case unstable.KeyValue:
			if current != nil {
				if err := d.set(current, expr); err != nil {
					return nil, err
				}

				continue
			}

			// Top-level key: the value must be an inline table.
			key := strings.Join(tomlKey(expr.Key()), ".")

			value := expr.Value()
			if value.Kind != unstable.InlineTable {
				return nil, parseErrorf(source, line, "entry %q: %w", key, ErrEntryNotMapping)
			}

			inline := newTOMLEntry(key, line)

			for it := value.Children(); it.Next(); {
				if err := d.set(inline, it.Node()); err != nil {
					return nil, err
				}
			}

			if err := b.add(inline.Entry); err != nil {
				return nil, err
			}
		}
	}

	if err := d.p.Error(); err != nil {
		return nil, diagnostic.Parse(source, d.errorLine(data, err), err)
	}

	if err := flush(); err != nil {
		return nil, err
	}

	if exprs == 0 {
		return nil, diagnostic.Parse(source, 0, ErrEmptyDocument)
	}

	return b.cat, nil
}

type tomlDecoder struct {
	p      unstable.Parser
	source string
}

// line returns the line of the first key segment, 0 if there is none.
func (d *tomlDecoder) line(it unstable.Iterator) int {
	if !it.Next() {
		return 0
	}

	return d.p.Shape(it.Node().Raw).Start.Line
}

// errorLine locates the highlighted bytes of a parser error in data.
func (d *tomlDecoder) errorLine(data []byte, err error) int {
	var perr *unstable.ParserError
	if !errors.As(err, &perr) || len(perr.Highlight) == 0 {
		return 0
	}

	offset := cap(data) - cap(perr.Highlight)
	if offset < 0 || offset >= len(data) || &data[offset] != &perr.Highlight[0] {
		return 0
	}

	return lineAt(data, int64(offset))
}

// set records one key/value of the entry. Dotted and unknown keys are ignored.
func (d *tomlDecoder) set(e *tomlEntry, kv *unstable.Node) error {
	key := tomlKey(kv.Key())
	if len(key) != 1 {
		return nil
	}

	line := d.line(kv.Key())

	field := key[0]
	if e.fields[field] {
		return parseErrorf(d.source, line, "entry %q: %w %q", e.Key, ErrDuplicateKey, field)
	}

	e.fields[field] = true

	if field != FieldText && field != FieldComment {
		return nil
	}

	value := kv.Value()
	if value.Kind != unstable.String {
		return schemaError(d.source, e.Key, field, line, ErrNotString)
	}

	s := string(value.Data)
	if field == FieldText {
		e.Text = &s
	} else {
		e.Comment = &s
	}

	return nil
}

// tomlEntry is an entry being assembled from key/value expressions.
type tomlEntry struct {
	Entry
	fields map[string]bool
}

func newTOMLEntry(key string, line int) *tomlEntry {
	return &tomlEntry{Entry: Entry{Key: key, Line: line}, fields: map[string]bool{}}
}

func tomlKey(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}

	return parts
}
