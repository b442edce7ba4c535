package repl

import "fmt"

// State is the session state.
type State int

const (
	// AwaitingFirst waits for the first valid operand.
	AwaitingFirst State = iota
	// AwaitingSecond holds the first operand and waits for the second.
	AwaitingSecond
	// Done means the sum was emitted. No further input is read.
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case AwaitingFirst:
		return "awaiting_first"
	case AwaitingSecond:
		return "awaiting_second"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Policy decides what an invalid line does to a held first operand.
type Policy string

const (
	// PolicyKeep keeps the first operand and re-prompts for the second.
	PolicyKeep Policy = "keep"
	// PolicyRestart discards the first operand and starts over.
	PolicyRestart Policy = "restart"
)

// ParsePolicy converts a configuration value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyKeep, PolicyRestart:
		return p, nil
	default:
		return "", fmt.Errorf("unknown invalid-input policy %q", s)
	}
}
