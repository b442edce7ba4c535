package bignum

import "fmt"

// Normalize converts a literal accepted by IsValidInteger into its canonical
// SignedInteger. Leading zeros are stripped down to a single digit and any
// zero ("0", "+0", "-000") becomes Zero.
//
// Normalize panics if token is not a valid literal; use Parse for untrusted
// input.
func Normalize(token string) SignedInteger {
	if !IsValidInteger(token) {
		panic(fmt.Sprintf("bignum: Normalize called with invalid literal %q", token))
	}

	sign := Positive
	digits := token
	switch token[0] {
	case '-':
		sign = Negative
		digits = token[1:]
	case '+':
		digits = token[1:]
	}

	return newSigned(sign, stripLeadingZeros(digits))
}

// Parse validates and normalizes token. It returns ErrInvalidOperandFormat
// when token is not a signed integer literal.
func Parse(token string) (SignedInteger, error) {
	if !IsValidInteger(token) {
		return SignedInteger{}, ErrInvalidOperandFormat.WithDetails(DetailMalformed)
	}
	return Normalize(token), nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(token string) SignedInteger {
	n, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return n
}

// stripLeadingZeros removes leading '0' characters but never the last digit,
// so an all-zero run collapses to "0".
func stripLeadingZeros(digits string) string {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return digits[i:]
}
