package bignum

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	assert.Equal(t, "[BS-TEST-1000] test message", NewDomainError("BS-TEST-1000", "test message").Error())
	assert.Equal(t, "[BS-OPND-4000] invalid operand format: malformed literal",
		ErrInvalidOperandFormat.WithDetails(DetailMalformed).Error())
}

func TestDomainError_IsMatchesCodeOnly(t *testing.T) {
	tooLong := ErrInvalidOperandFormat.WithDetails(DetailTooManyDigits)
	wrapped := fmt.Errorf("line 2: %w", ErrInvalidOperandFormat.WithDetails(DetailMalformed))

	assert.ErrorIs(t, tooLong, ErrInvalidOperandFormat)
	assert.ErrorIs(t, wrapped, ErrInvalidOperandFormat)
	assert.NotErrorIs(t, tooLong, NewDomainError("BS-TEST-1000", "other"))
	assert.NotErrorIs(t, tooLong, errors.New("plain"))
}

func TestDomainError_CopiesLeaveSentinelAlone(t *testing.T) {
	cause := errors.New("underlying cause")
	err := ErrInvalidOperandFormat.WithDetails("x").WithCause(cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Equal(t, "x", err.Details)
	assert.Empty(t, ErrInvalidOperandFormat.Details)
	assert.Nil(t, ErrInvalidOperandFormat.Cause)
}

func TestCodeOfAndDetailsOf(t *testing.T) {
	wrapped := fmt.Errorf("read operand: %w", ErrInvalidOperandFormat.WithDetails(DetailTooManyDigits))

	assert.Equal(t, "BS-OPND-4000", CodeOf(wrapped))
	assert.Equal(t, DetailTooManyDigits, DetailsOf(wrapped))
	assert.Empty(t, CodeOf(errors.New("plain")))
	assert.Empty(t, DetailsOf(nil))
}
