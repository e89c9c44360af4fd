package gen

import "text/template"

// templateData holds everything the header template needs.
type templateData struct {
	Filename     string
	Includes     []string
	Namespaces   []string
	Indent       string
	Declarations []declaration
	Closers      []string
}

// declaration is one entry's block.
type declaration struct {
	Identifier string
	Text       string
	Comment    string
}

// The template is whitespace sensitive: blank lines surround the
// declaration blocks only when there is at least one of them.
var headerTemplate = template.Must(template.New("header").Funcs(template.FuncMap{
	"indent": indent,
}).Parse(`//---------------------------------------------------------------
//
// {{.Filename}}
//

///////////////////////////////////////////////////////
//
// THIS FILE IS GENERATED!! CHANGES HERE WILL BE LOST!
//
///////////////////////////////////////////////////////

#pragma once
{{if .Includes}}
{{range .Includes}}#include {{.}}
{{end}}{{end}}
{{range $i, $ns := .Namespaces}}{{indent $i}}namespace {{$ns}} {
{{end}}{{if .Declarations}}
{{range .Declarations}}{{$.Indent}}// {{.Comment}}
{{$.Indent}}static constexpr std::string_view {{.Identifier}} = "{{.Text}}";

{{end}}{{end}}{{range .Closers}}{{.}}
{{end}}`))
