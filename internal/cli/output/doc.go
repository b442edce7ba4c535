// Package output renders a session result on stdout.
//
//   - formatter.go: Formatter interface, Result and factory
//   - plain.go: bare sum line
//   - json.go: single-line JSON object
//   - yaml.go: YAML document
//
// Every formatter writes exactly one record terminated by a newline. The
// sum is always encoded as a string so no decoder can lose precision.
package output
