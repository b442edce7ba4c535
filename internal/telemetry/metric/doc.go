// Package metric provides Prometheus metrics for bigsum.
//
// This package implements metrics collection and export:
//
//   - prometheus.go: metric definitions on a private registry
//   - collector.go: session recorder used by the calculator and REPL
//
// Metrics include:
//
//   - Accepted and rejected operand counters
//   - Operand and result digit-count histograms
//   - Sum path counters (add, subtract, cancel)
//   - Session outcome counters
//
// A one-shot process has no scrape endpoint, so metrics are written in
// Prometheus text format to a file at exit (node_exporter textfile style).
package metric
