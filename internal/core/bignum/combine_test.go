package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSigned(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"basic", "123", "456", "579"},
		{"negative plus larger positive", "-999", "1000", "1"},
		{"leading zeros mixed signs", "000123", "-000456", "-333"},
		{"carry into new digit", "999999999999999999999", "1", "1000000000000000000000"},
		{"cancel", "-12345", "12345", "0"},
		{"cancel reversed", "12345", "-12345", "0"},
		{"zero plus zero", "0", "0", "0"},
		{"negative zeros", "-0", "-0", "0"},
		{"zero plus negative", "0", "-123", "-123"},
		{"negative plus zero", "-123", "0", "-123"},
		{"both negative", "-123", "-456", "-579"},
		{"positive plus negative", "123", "-456", "-333"},
		{"negative plus positive", "-123", "456", "333"},
		{"close values", "-12345", "12346", "1"},
		{"close values reversed", "12345", "-12346", "-1"},
		{"different lengths", "-12345", "987654321", "987641976"},
		{"different lengths negative", "12345", "-987654321", "-987641976"},
		{"borrow chain", "-1000", "999", "-1"},
		{"explicit plus signs", "+123", "-456", "-333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddSigned(Normalize(tt.a), Normalize(tt.b))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAddSigned_ZeroIsPositive(t *testing.T) {
	got := AddSigned(Normalize("-500"), Normalize("500"))
	assert.Equal(t, Positive, got.Sign())
	assert.True(t, got.Equal(Zero))
}

func TestNegate(t *testing.T) {
	assert.Equal(t, "-5", Negate(Normalize("5")).String())
	assert.Equal(t, "5", Negate(Normalize("-5")).String())
	assert.True(t, Negate(Zero).Equal(Zero))
	assert.Equal(t, Positive, Negate(Zero).Sign())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		a, b string
		want Path
	}{
		{"1", "2", PathAdd},
		{"-1", "-2", PathAdd},
		{"0", "0", PathAdd},
		{"-1", "2", PathSubtract},
		{"0", "-2", PathSubtract},
		{"-7", "7", PathCancel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(Normalize(tt.a), Normalize(tt.b)), "Classify(%s, %s)", tt.a, tt.b)
	}
}
