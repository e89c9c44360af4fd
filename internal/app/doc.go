// Package app runs one generation: load the catalog, render the header in
// memory, then write it (or print it on a dry run).
package app
