// Command bigsum reads two signed decimal integers of up to 1000 significant
// digits from stdin, one per line, and prints their exact sum.
//
// Invalid lines are reported on stderr and the session waits for another
// line. Only the sum is ever written to stdout.
//
// Usage:
//
//	printf '123\n456\n' | bigsum
//	bigsum --prompt --on-invalid restart
//	bigsum -o json --metrics-file /var/lib/node_exporter/bigsum.prom
//	bigsum config show
package main
