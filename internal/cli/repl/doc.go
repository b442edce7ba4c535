// Package repl implements the interactive bigsum session.
//
//   - state.go: session states and the invalid-after-first policy
//   - repl.go: session loop and line queue
//   - transcript.go: bounded in-memory record of processed lines
//
// A session reads one literal per line until it holds two valid operands,
// writes their sum once and stops. Rejected lines produce a diagnostic on
// the error stream and never touch the result stream.
package repl
