// Package diagnostic defines the error taxonomy of the generator.
//
// Every failure that aborts a run is reported as an *Error carrying a Kind:
//   - KindIO: the catalog cannot be read or the header cannot be written
//   - KindParse: the catalog is not well-formed structured data
//   - KindSchema: an entry is missing a required field or holds unsupported content
//   - KindIdentifier: a key does not yield a usable, unique constant name
//
// The Kind decides the process exit code (see ExitCode).
package diagnostic
