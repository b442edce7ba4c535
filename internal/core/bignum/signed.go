package bignum

// Sign is the sign of a SignedInteger.
type Sign int8

const (
	Positive Sign = iota
	Negative
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// SignedInteger is a canonical signed-magnitude integer.
//
// The magnitude holds ASCII digits, most significant first, with no leading
// zero unless the value is exactly "0". Zero is always Positive. The zero
// value of SignedInteger is not valid; use Zero.
type SignedInteger struct {
	sign      Sign
	magnitude string
}

// Zero is the canonical zero value.
var Zero = SignedInteger{sign: Positive, magnitude: "0"}

// Sign returns the sign. Zero reports Positive.
func (n SignedInteger) Sign() Sign {
	return n.sign
}

// Magnitude returns the unsigned digit string.
func (n SignedInteger) Magnitude() string {
	return n.magnitude
}

// Digits returns the number of significant digits.
func (n SignedInteger) Digits() int {
	return len(n.magnitude)
}

// IsZero reports whether n is zero.
func (n SignedInteger) IsZero() bool {
	return n.magnitude == "0"
}

// Equal reports whether n and other denote the same value.
func (n SignedInteger) Equal(other SignedInteger) bool {
	return n.sign == other.sign && n.magnitude == other.magnitude
}

// String formats n as decimal text. Only negative values carry a sign.
func (n SignedInteger) String() string {
	if n.sign == Negative {
		return "-" + n.magnitude
	}
	return n.magnitude
}

// newSigned builds a SignedInteger from a canonical magnitude and enforces
// the zero-is-positive rule.
func newSigned(sign Sign, magnitude string) SignedInteger {
	if magnitude == "0" {
		return Zero
	}
	return SignedInteger{sign: sign, magnitude: magnitude}
}
