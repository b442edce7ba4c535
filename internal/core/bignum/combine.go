package bignum

// AddSigned returns a + b.
//
// Equal signs add magnitudes under the common sign. Differing signs
// subtract the smaller magnitude from the larger, and the larger operand
// supplies the sign. Equal magnitudes with differing signs cancel to Zero
// whatever the operand order.
func AddSigned(a, b SignedInteger) SignedInteger {
	if a.sign == b.sign {
		return newSigned(a.sign, AddMagnitudes(a.magnitude, b.magnitude))
	}

	switch Compare(a.magnitude, b.magnitude) {
	case Greater:
		return newSigned(a.sign, SubMagnitudes(a.magnitude, b.magnitude))
	case Less:
		return newSigned(b.sign, SubMagnitudes(b.magnitude, a.magnitude))
	default:
		return Zero
	}
}

// Negate returns -n. Zero stays Positive.
func Negate(n SignedInteger) SignedInteger {
	if n.sign == Negative {
		return newSigned(Positive, n.magnitude)
	}
	return newSigned(Negative, n.magnitude)
}

// Path names how AddSigned combines two operands.
type Path string

const (
	PathAdd      Path = "add"      // same signs, magnitudes added
	PathSubtract Path = "subtract" // differing signs, magnitudes subtracted
	PathCancel   Path = "cancel"   // differing signs, equal magnitudes
)

// Classify reports which path AddSigned takes for a and b.
func Classify(a, b SignedInteger) Path {
	if a.sign == b.sign {
		return PathAdd
	}
	if Compare(a.magnitude, b.magnitude) == Equal {
		return PathCancel
	}
	return PathSubtract
}
