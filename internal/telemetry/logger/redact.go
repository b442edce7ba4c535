package logger

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// operandPreview is the number of leading and trailing characters kept
// when an operand is abbreviated.
const operandPreview = 8

// Operand renders an operand literal for logging.
//
// Operands may run to thousands of characters, so anything longer than a
// short preview is cut to head...tail with its length and a murmur3
// fingerprint. Two log lines with the same fingerprint saw the same input.
func Operand(raw string) string {
	if len(raw) <= 2*operandPreview+3 {
		return raw
	}
	return fmt.Sprintf("%s...%s (%d chars, murmur3:%s)",
		raw[:operandPreview], raw[len(raw)-operandPreview:], len(raw), Fingerprint(raw))
}

// Fingerprint returns the 32-bit murmur3 hash of s as 8 hex digits.
func Fingerprint(s string) string {
	return fmt.Sprintf("%08x", murmur3.Sum32([]byte(s)))
}
