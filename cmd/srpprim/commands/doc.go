// Package commands defines the srpprim CLI and wires dependencies for subcommands.
//
// Commands
//
//   - digest    Hash files, stdin or strings incrementally
//   - arith     Add, subtract, multiply or reduce hex integers
//   - modexp    Compute BASE^EXP mod MOD over hex integers
//   - rand      Print a random integer of an exact bit length
//   - selftest  Run known-answer and property checks
//
// # Implementation
//
// The root command loads the TOML config, applies flag overrides, configures
// logging and builds an app.Wire before any subcommand runs. Results go to
// the command's output stream; logs go to stderr.
package commands
