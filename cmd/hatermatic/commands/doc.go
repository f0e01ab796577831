// Package commands defines the hatermatic CLI and wires dependencies for subcommands.
//
// Commands
//
//   - pick     Print a random phrase for a tier
//   - list     Print a catalog's phrases with their indices
//   - tiers    Print each tier and its phrase count
//   - export   Write the active catalog to a YAML file
//   - check    Validate a YAML catalog file
//
// # Implementation
//
// The root command loads the config file, applies flag overrides, builds the
// logger and the selector before any subcommand runs, so handlers share one
// random source seeded once per process.
package commands
