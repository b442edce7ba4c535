// Package logger provides structured logging for bigsum.
//
// This package wraps zap for structured logging:
//
//   - logger.go: Logger interface, configuration and the global default
//   - zap.go: zap-backed implementation
//   - context.go: context-aware logging with session IDs
//   - redact.go: compact rendering of operand literals
//
// Features:
//
//   - JSON and console output formats
//   - Log level filtering, adjustable at runtime
//   - Long operands are abbreviated and fingerprinted, never logged in full
//   - Context propagation of the session ID
//
// Logs always go to stderr by default; stdout is reserved for the result.
package logger
