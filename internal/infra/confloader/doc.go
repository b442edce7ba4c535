// Package confloader merges configuration layers with koanf and remembers
// which layer set each key.
//
// Layers, lowest precedence first:
//
//  1. values already present in the target struct
//  2. a YAML file
//  3. prefixed environment variables (BIGSUM_SECTION_KEY)
//  4. flag overrides keyed by dotted path
//
// Every layer is loaded into its own koanf instance before being merged, so
// Origins can report the winning layer per key ("bigsum config show
// --origins").
package confloader
