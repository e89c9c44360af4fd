// Package cli turns command-line arguments into a validated config.Config
// and builds the process logger.
package cli
