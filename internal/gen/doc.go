// Package gen renders the C++ header declaring one string constant per
// catalog entry, and writes it to disk.
//
// Generation uses text/template into an in-memory buffer. The whole document
// is rendered, and every entry validated, before anything touches the output
// file, so a failing run never leaves a partial header behind.
//
// Output shape:
//   - fixed banner and #pragma once
//   - configured #include lines
//   - nested namespaces, one tab of indentation per level
//   - per entry: a line comment and a static constexpr std::string_view
package gen
