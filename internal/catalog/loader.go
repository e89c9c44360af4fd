package catalog

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"uitext-generator/internal/diagnostic"
)

// Format is the syntax of a catalog file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
	FormatHCL
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// FormatFor picks the format from the file extension. Unknown extensions
// are read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".hcl":
		return FormatHCL
	default:
		return FormatJSON
	}
}

// LoadFile reads and parses the catalog at path from fsys.
func LoadFile(fsys billy.Filesystem, path string) (*Catalog, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, diagnostic.IO(path, err)
	}

	return Parse(data, FormatFor(path), path)
}

// Parse decodes data in the given format. Source names the data in
// diagnostics and is stored on the returned catalog.
func Parse(data []byte, format Format, source string) (*Catalog, error) {
	switch format {
	case FormatTOML:
		return parseTOML(data, source)
	case FormatHCL:
		return parseHCL(data, source)
	case FormatYAML:
		return parseYAML(data, source)
	default:
		return parseJSON(data, source)
	}
}
