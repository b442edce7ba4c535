package service

import (
	"context"

	"github.com/yndnr/bigsum-go/internal/core/bignum"
	"github.com/yndnr/bigsum-go/internal/telemetry/logger"
	"github.com/yndnr/bigsum-go/internal/telemetry/metric"
)

// DefaultMaxDigits is the default limit on significant digits per operand.
const DefaultMaxDigits = 1000

// Calculator parses operands and adds them.
type Calculator interface {
	// Parse validates and normalizes a raw operand token. Rejections are
	// bignum.ErrInvalidOperandFormat with details.
	Parse(ctx context.Context, raw string) (bignum.SignedInteger, error)

	// Add returns a + b.
	Add(ctx context.Context, a, b bignum.SignedInteger) bignum.SignedInteger
}

// Config holds ArithmeticService configuration.
type Config struct {
	// MaxDigits limits significant digits after normalization (default: 1000).
	MaxDigits int
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{MaxDigits: DefaultMaxDigits}
}

// ArithmeticService is the default Calculator.
type ArithmeticService struct {
	maxDigits int
	metrics   metric.Recorder
}

var _ Calculator = (*ArithmeticService)(nil)

// NewArithmeticService creates an ArithmeticService. A nil config uses
// defaults and a nil recorder disables metrics.
func NewArithmeticService(config *Config, metrics metric.Recorder) *ArithmeticService {
	if config == nil {
		config = DefaultConfig()
	}
	if metrics == nil {
		metrics = metric.Nop()
	}

	maxDigits := config.MaxDigits
	if maxDigits <= 0 {
		maxDigits = DefaultMaxDigits
	}

	return &ArithmeticService{
		maxDigits: maxDigits,
		metrics:   metrics,
	}
}

// MaxDigits returns the configured digit limit.
func (s *ArithmeticService) MaxDigits() int {
	return s.maxDigits
}

// Parse implements Calculator.
//
// The digit limit applies to the normalized magnitude, so leading zeros and
// signs never count against it.
func (s *ArithmeticService) Parse(ctx context.Context, raw string) (bignum.SignedInteger, error) {
	log := logger.L(ctx)

	n, err := bignum.Parse(raw)
	if err != nil {
		s.metrics.OperandRejected(metric.ReasonMalformed)
		log.Debug("operand rejected",
			"reason", metric.ReasonMalformed,
			"operand", logger.Operand(raw),
		)
		return bignum.SignedInteger{}, err
	}

	if n.Digits() > s.maxDigits {
		s.metrics.OperandRejected(metric.ReasonTooLong)
		log.Debug("operand rejected",
			"reason", metric.ReasonTooLong,
			"digits", n.Digits(),
			"max_digits", s.maxDigits,
			"operand", logger.Operand(raw),
		)
		return bignum.SignedInteger{}, bignum.ErrInvalidOperandFormat.WithDetails(bignum.DetailTooManyDigits)
	}

	s.metrics.OperandAccepted(n.Digits())
	log.Debug("operand accepted",
		"sign", n.Sign().String(),
		"digits", n.Digits(),
		"operand", logger.Operand(raw),
	)
	return n, nil
}

// Add implements Calculator.
func (s *ArithmeticService) Add(ctx context.Context, a, b bignum.SignedInteger) bignum.SignedInteger {
	path := bignum.Classify(a, b)
	sum := bignum.AddSigned(a, b)

	s.metrics.SumComputed(string(path), sum.Digits())
	logger.L(ctx).Debug("sum computed",
		"path", string(path),
		"digits", sum.Digits(),
	)
	return sum
}
