package catalog

import (
	"gopkg.in/yaml.v3"

	"uitext-generator/internal/diagnostic"
)

// parseYAML walks the node tree instead of unmarshalling into a map so that
// key order and line numbers survive.
func parseYAML(data []byte, source string) (*Catalog, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diagnostic.Parse(source, 0, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, diagnostic.Parse(source, 0, ErrEmptyDocument)
	}

	root := deref(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, diagnostic.Parse(source, root.Line, ErrNotMapping)
	}

	b := newBuilder(source)

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := deref(root.Content[i]), deref(root.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, parseErrorf(source, keyNode.Line, "keys must be strings")
		}

		entry, err := yamlEntry(source, keyNode.Value, valNode)
		if err != nil {
			return nil, err
		}

		entry.Line = keyNode.Line

		if err := b.add(entry); err != nil {
			return nil, err
		}
	}

	return b.cat, nil
}

func yamlEntry(source, key string, node *yaml.Node) (Entry, error) {
	entry := Entry{Key: key}

	if node.Kind != yaml.MappingNode {
		return entry, parseErrorf(source, node.Line, "entry %q: %w", key, ErrEntryNotMapping)
	}

	seen := map[string]bool{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		field, value := deref(node.Content[i]), deref(node.Content[i+1])

		if seen[field.Value] {
			return entry, parseErrorf(source, field.Line, "entry %q: %w %q", key, ErrDuplicateKey, field.Value)
		}

		seen[field.Value] = true

		switch field.Value {
		case FieldText, FieldComment:
			s, err := yamlString(value)
			if err != nil {
				return entry, schemaError(source, key, field.Value, value.Line, err)
			}

			if field.Value == FieldText {
				entry.Text = s
			} else {
				entry.Comment = s
			}
		}
	}

	return entry, nil
}

// yamlString returns nil for an explicit null.
func yamlString(node *yaml.Node) (*string, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, ErrNotString
	}

	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!str":
		s := node.Value
		return &s, nil
	default:
		return nil, ErrNotString
	}
}

func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}
