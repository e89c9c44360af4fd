package gen

import (
	"bytes"
	"fmt"
	"strings"

	"uitext-generator/internal/catalog"
	"uitext-generator/internal/diagnostic"
	"uitext-generator/internal/naming"
)

// GeneratorConfig holds configuration for header generation.
type GeneratorConfig struct {
	// Filename is shown in the banner of the generated file.
	Filename string
	// Includes are emitted as #include lines, brackets or quotes included.
	Includes []string
	// Namespaces are opened outermost first.
	Namespaces []string
	// Naming controls how constant names are derived from keys.
	Naming naming.Options
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:   "UITextStrings.h",
		Includes:   []string{"<string_view>"},
		Namespaces: []string{"Checkers", "UIText"},
		Naming:     naming.DefaultOptions(),
	}
}

// Generator renders headers from catalogs.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Render returns the complete header for cat.
//
// All identifiers are derived first so that invalid or colliding keys fail
// before any entry is looked at. Entries are then validated one by one in
// catalog order; the first invalid entry aborts the render.
func (g *Generator) Render(cat *catalog.Catalog) ([]byte, error) {
	ids, err := naming.Assign(cat.Keys(), g.config.Naming)
	if err != nil {
		return nil, diagnostic.WithPath(err, cat.Source)
	}

	data := g.newTemplateData(cat.Len())

	for i, entry := range cat.Entries {
		if err := catalog.ValidateEntry(entry); err != nil {
			return nil, diagnostic.WithPath(err, cat.Source)
		}

		data.Declarations = append(data.Declarations, declaration{
			Identifier: ids[i],
			Text:       *entry.Text,
			Comment:    *entry.Comment,
		})
	}

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) newTemplateData(capacity int) *templateData {
	depth := len(g.config.Namespaces)

	closers := make([]string, 0, depth)
	for i := depth - 1; i >= 0; i-- {
		closers = append(closers, indent(i)+"}")
	}

	return &templateData{
		Filename:     g.config.Filename,
		Includes:     g.config.Includes,
		Namespaces:   g.config.Namespaces,
		Indent:       indent(depth),
		Declarations: make([]declaration, 0, capacity),
		Closers:      closers,
	}
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}
