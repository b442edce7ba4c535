package bignum

import (
	"errors"
	"strings"
)

// DomainError is an error with a stable code. errors.Is matches on Code
// alone, so copies carrying different details still match their sentinel.
type DomainError struct {
	Code    string
	Message string
	Details string
	Cause   error
}

// NewDomainError returns a sentinel for code.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString("[" + e.Code + "] " + e.Message)
	if e.Details != "" {
		b.WriteString(": " + e.Details)
	}
	return b.String()
}

func (e *DomainError) Unwrap() error { return e.Cause }

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// WithDetails returns a copy of e with details set.
func (e *DomainError) WithDetails(details string) *DomainError {
	c := *e
	c.Details = details
	return &c
}

// WithCause returns a copy of e wrapping cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := *e
	c.Cause = cause
	return &c
}

// CodeOf returns the code of the first DomainError in err's chain, or "".
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// DetailsOf returns the details of the first DomainError in err's chain.
func DetailsOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Details
	}
	return ""
}

// ErrInvalidOperandFormat rejects a line that is not an acceptable integer
// literal. Malformed and oversized literals share it; only Details differ.
var ErrInvalidOperandFormat = NewDomainError("BS-OPND-4000", "invalid operand format")

// Details attached to ErrInvalidOperandFormat. They only reach logs.
const (
	DetailMalformed     = "malformed literal"
	DetailTooManyDigits = "too many significant digits"
)
