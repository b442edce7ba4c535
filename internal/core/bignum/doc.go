// Package bignum implements arbitrary-precision signed decimal integers.
//
// Values are kept as sign plus a canonical digit string, and all arithmetic
// works digit by digit on that string. No fixed-width or floating-point
// numeric type ever holds an operand.
//
//   - validate.go: literal syntax check (IsValidInteger)
//   - normalize.go: literal to canonical SignedInteger (Normalize, Parse)
//   - magnitude.go: unsigned compare, add and subtract on digit strings
//   - combine.go: signed addition (AddSigned, Negate)
//   - errors.go: domain errors
//
// A SignedInteger is immutable once constructed. Zero is always Positive.
package bignum
