package catalog

// Field names of a catalog entry.
const (
	FieldText    = "text"
	FieldComment = "comment"
)

// Catalog is the ordered set of entries loaded from one file.
type Catalog struct {
	// Source is the path the catalog was read from, used in diagnostics.
	Source string
	// Entries in file order.
	Entries []Entry
}

// Entry is one catalog record. A nil Text or Comment means the field was
// absent (or explicitly null) in the source.
type Entry struct {
	Key     string
	Text    *string
	Comment *string
	// Line is the 1-based line the entry starts on, 0 if unknown.
	Line int
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.Entries)
}

// Keys returns the entry keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		keys[i] = e.Key
	}

	return keys
}

// builder accumulates entries and rejects duplicate keys.
type builder struct {
	cat  *Catalog
	seen map[string]int
}

func newBuilder(source string) *builder {
	return &builder{
		cat:  &Catalog{Source: source, Entries: []Entry{}},
		seen: map[string]int{},
	}
}

// add appends e, or returns a parse diagnostic if its key was already used.
func (b *builder) add(e Entry) error {
	if first, ok := b.seen[e.Key]; ok {
		if first > 0 {
			return parseErrorf(b.cat.Source, e.Line, "%w %q (first defined at line %d)", ErrDuplicateKey, e.Key, first)
		}

		return parseErrorf(b.cat.Source, e.Line, "%w %q", ErrDuplicateKey, e.Key)
	}

	b.seen[e.Key] = e.Line
	b.cat.Entries = append(b.cat.Entries, e)

	return nil
}
