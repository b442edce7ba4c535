package metric

// Rejection reasons used as the "reason" label.
const (
	ReasonMalformed = "malformed"
	ReasonTooLong   = "too_long"
)

// Session outcomes used as the "outcome" label.
const (
	OutcomeCompleted = "completed"
	OutcomeEOF       = "eof"
	OutcomeCancelled = "cancelled"
)

// Recorder receives session events. *Registry implements it; Nop discards
// everything.
type Recorder interface {
	OperandAccepted(digits int)
	OperandRejected(reason string)
	SumComputed(path string, digits int)
	SessionFinished(outcome string)
}

// OperandAccepted records an accepted operand with its significant digits.
func (r *Registry) OperandAccepted(digits int) {
	r.OperandsAccepted.Inc()
	r.OperandDigits.Observe(float64(digits))
}

// OperandRejected records a rejected line.
func (r *Registry) OperandRejected(reason string) {
	r.OperandsRejected.WithLabelValues(reason).Inc()
}

// SumComputed records a computed sum.
func (r *Registry) SumComputed(path string, digits int) {
	r.SumsTotal.WithLabelValues(path).Inc()
	r.ResultDigits.Observe(float64(digits))
}

// SessionFinished records how a session ended.
func (r *Registry) SessionFinished(outcome string) {
	r.SessionsTotal.WithLabelValues(outcome).Inc()
}

// Nop returns a Recorder that discards everything.
func Nop() Recorder {
	return nopRecorder{}
}

type nopRecorder struct{}

func (nopRecorder) OperandAccepted(int) {}
func (nopRecorder) OperandRejected(string) {}
func (nopRecorder) SumComputed(string, int) {}
func (nopRecorder) SessionFinished(string) {}
