// Package config provides bigsum configuration.
//
//   - schema.go: CLIConfig struct and sections
//   - default.go: default values
//   - verify.go: validation
//   - loader.go: loading from file, environment and flag overrides
//
// Sources are merged with priority flags > BIGSUM_* environment > YAML file >
// defaults.
package config
