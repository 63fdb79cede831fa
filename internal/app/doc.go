// Package app wires application dependencies for the CLI.
//
// It loads Config from a TOML file (or defaults), validates it, and builds
// the digest factory and vector store exposed via the Wire struct for
// commands to use.
package app
