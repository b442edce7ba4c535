package bignum

import "strings"

// IsValidInteger reports whether token is a signed integer literal: an
// optional single '+' or '-' followed by one or more ASCII digits and
// nothing else.
//
// There is no digit-count ceiling here. Limits apply to the normalized
// magnitude, see Normalize.
func IsValidInteger(token string) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}

	start := 0
	if token[0] == '+' || token[0] == '-' {
		start = 1
	}

	// A bare sign has no digits.
	if start >= len(token) {
		return false
	}

	for i := start; i < len(token); i++ {
		if !isDigit(token[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
