package bignum

// Ordering is the result of comparing two magnitudes.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns "less", "equal" or "greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Compare orders two canonical magnitudes (no sign, no leading zero).
//
// Without leading zeros a longer digit string is always larger. At equal
// length every position has the same place value, so byte order is numeric
// order.
func Compare(a, b string) Ordering {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return Greater
		}
		return Less
	}
	switch {
	case a > b:
		return Greater
	case a < b:
		return Less
	default:
		return Equal
	}
}

// AddMagnitudes returns a + b for two canonical magnitudes.
//
// Digits are added right to left with carry. The output buffer has room for
// one extra digit; when the final carry is zero that slot is dropped.
func AddMagnitudes(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}

	out := make([]byte, len(a)+1)
	carry := byte(0)
	i, j := len(a)-1, len(b)-1
	for k := len(out) - 1; k > 0; k-- {
		sum := a[i] - '0' + carry
		if j >= 0 {
			sum += b[j] - '0'
			j--
		}
		out[k] = sum%10 + '0'
		carry = sum / 10
		i--
	}

	if carry == 0 {
		return string(out[1:])
	}
	out[0] = carry + '0'
	return string(out)
}

// SubMagnitudes returns minuend - subtrahend for canonical magnitudes.
//
// The caller guarantees Compare(minuend, subtrahend) != Less. The result is
// stripped of leading zeros and is "0" when both are equal.
func SubMagnitudes(minuend, subtrahend string) string {
	out := make([]byte, len(minuend))
	borrow := 0
	j := len(subtrahend) - 1
	for i := len(minuend) - 1; i >= 0; i-- {
		d := int(minuend[i]-'0') - borrow
		if j >= 0 {
			d -= int(subtrahend[j] - '0')
			j--
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(d) + '0'
	}
	return stripLeadingZeros(string(out))
}
