// Package benchmark provides performance benchmarks for bigsum.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run a single operand size:
//
//	go test -bench='BenchmarkAddSigned/digits_1000' -benchmem -benchtime=10s ./internal/tests/benchmark/...
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
