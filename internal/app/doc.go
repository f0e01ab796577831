// Package app wires application dependencies for the CLI.
//
// It loads Config, builds the zap logger, resolves the active phrase catalog
// (built-in or from a file), seeds the random source and exposes the result
// via the Wire struct for commands to use.
package app
