package catalog

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"uitext-generator/internal/diagnostic"
)

var hclCatalogSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "entry", LabelNames: []string{"key"}},
	},
}

// parseHCL reads `entry "KEY" { text = "..." comment = "..." }` blocks in
// file order. Expressions are evaluated without variables or functions.
func parseHCL(data []byte, source string) (*Catalog, error) {
	file, diags := hclsyntax.ParseConfig(data, source, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diagnostic.Parse(source, diagLine(diags), diags)
	}

	if body, ok := file.Body.(*hclsyntax.Body); ok && len(body.Attributes) == 0 && len(body.Blocks) == 0 {
		return nil, diagnostic.Parse(source, 0, ErrEmptyDocument)
	}

	content, diags := file.Body.Content(hclCatalogSchema)
	if diags.HasErrors() {
		return nil, diagnostic.Parse(source, diagLine(diags), diags)
	}

	b := newBuilder(source)

	for _, block := range content.Blocks {
		entry := Entry{Key: block.Labels[0], Line: block.DefRange.Start.Line}

		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diagnostic.Parse(source, diagLine(diags), diags)
		}

		for _, field := range []string{FieldText, FieldComment} {
			attr, ok := attrs[field]
			if !ok {
				continue
			}

			s, err := hclString(source, entry.Key, field, attr)
			if err != nil {
				return nil, err
			}

			if field == FieldText {
				entry.Text = s
			} else {
				entry.Comment = s
			}
		}

		if err := b.add(entry); err != nil {
			return nil, err
		}
	}

	return b.cat, nil
}

// hclString evaluates attr; a null value counts as absent.
func hclString(source, key, field string, attr *hcl.Attribute) (*string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diagnostic.Parse(source, diagLine(diags), diags)
	}

	if val.IsNull() {
		return nil, nil
	}

	if !val.Type().Equals(cty.String) || !val.IsKnown() {
		return nil, schemaError(source, key, field, attr.Range.Start.Line, ErrNotString)
	}

	s := val.AsString()

	return &s, nil
}

func diagLine(diags hcl.Diagnostics) int {
	for _, d := range diags {
		if d.Subject != nil {
			return d.Subject.Start.Line
		}
	}

	return 0
}
