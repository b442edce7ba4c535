// Package command provides the bigsum command-line application.
//
// It uses urfave/cli/v2 for flag parsing. Running bigsum without a
// subcommand starts one session:
//
//   - root.go: App, global flags and Run with exit codes
//   - session.go: session action wiring config, logging, metrics and repl
//   - config.go: "config show" and "config validate" subcommands
package command
