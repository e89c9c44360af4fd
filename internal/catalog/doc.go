// Package catalog loads and validates the text catalog the header is
// generated from.
//
// A catalog maps an upper-case key to an entry with two required fields:
//
//	{
//	  "MAIN_MENU_TITLE": {
//	    "text": "Checkers",
//	    "comment": "Title shown on the main menu"
//	  }
//	}
//
// Key order in the file is preserved; it becomes declaration order in the
// generated header. The same shape is accepted as YAML, as TOML with
// one table or inline table per key, and as HCL:
//
//	entry "MAIN_MENU_TITLE" {
//	  text    = "Checkers"
//	  comment = "Title shown on the main menu"
//	}
//
// JSON is parsed strictly: comments, trailing commas and unquoted keys are
// syntax errors.
//
// A file without any content, blank or holding only comments, is rejected
// with ErrEmptyDocument in every format. An empty catalog is written as an
// explicit empty mapping, such as {} in JSON or YAML.
//
// Structural problems (syntax, non-mapping entries, duplicate keys) are
// reported as diagnostic.KindParse. Missing or unusable fields are
// diagnostic.KindSchema and are checked entry by entry with ValidateEntry.
package catalog
