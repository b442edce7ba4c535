package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yndnr/bigsum-go/internal/cli/output"
	"github.com/yndnr/bigsum-go/internal/core/bignum"
	"github.com/yndnr/bigsum-go/internal/core/service"
	"github.com/yndnr/bigsum-go/internal/telemetry/logger"
	"github.com/yndnr/bigsum-go/internal/telemetry/metric"
)

// Messages written to the error stream.
const (
	InvalidInputMessage = "Invalid input. Please enter a valid integer."
	FirstPrompt         = "Enter the first integer: "
	SecondPrompt        = "Enter the second integer: "
)

// DefaultTranscriptSize is the default number of transcript entries kept.
const DefaultTranscriptSize = 1000

// Result describes how a session ended.
//
// First is meaningful once State has left AwaitingFirst; Second and Sum
// only when State is Done.
type Result struct {
	Sum      bignum.SignedInteger
	First    bignum.SignedInteger
	Second   bignum.SignedInteger
	Rejected int
	State    State
}

// REPL is a single bigsum session. It is not reusable.
type REPL struct {
	calc       service.Calculator
	input      io.Reader
	output     io.Writer
	errOutput  io.Writer
	formatter  output.Formatter
	policy     Policy
	prompt     bool
	transcript *Transcript
	metrics    metric.Recorder
}

// Option configures a REPL.
type Option func(*REPL)

// WithPolicy sets the invalid-after-first policy.
func WithPolicy(p Policy) Option {
	return func(r *REPL) {
		r.policy = p
	}
}

// WithPrompt enables prompts on the error stream.
func WithPrompt(enabled bool) Option {
	return func(r *REPL) {
		r.prompt = enabled
	}
}

// WithFormatter sets the result formatter.
func WithFormatter(f output.Formatter) Option {
	return func(r *REPL) {
		r.formatter = f
	}
}

// WithTranscriptSize bounds the transcript. Zero disables it.
func WithTranscriptSize(n int) Option {
	return func(r *REPL) {
		r.transcript = NewTranscript(n)
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(m metric.Recorder) Option {
	return func(r *REPL) {
		r.metrics = m
	}
}

// New creates a session reading lines from input, writing the result to
// out and diagnostics and prompts to errOut.
func New(calc service.Calculator, input io.Reader, out, errOut io.Writer, opts ...Option) *REPL {
	r := &REPL{
		calc:       calc,
		input:      input,
		output:     out,
		errOutput:  errOut,
		formatter:  &output.PlainFormatter{},
		policy:     PolicyKeep,
		transcript: NewTranscript(DefaultTranscriptSize),
		metrics:    metric.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Transcript returns the session transcript.
func (r *REPL) Transcript() *Transcript {
	return r.transcript
}

// Run runs the session until a sum is written, input ends or ctx is done.
//
// End of input before two valid operands is not an error: Run returns the
// partial Result with a nil error. Cancellation returns ctx.Err() and
// writes no result.
func (r *REPL) Run(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logger.L(ctx)
	res := Result{State: AwaitingFirst}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, r.input, lines, readErr)

	defer r.logTranscript(log)

	lineNo := 0
	r.promptFor(res.State)
	for {
		select {
		case <-ctx.Done():
			r.metrics.SessionFinished(metric.OutcomeCancelled)
			log.Info("session cancelled", "state", res.State.String())
			return res, ctx.Err()

		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return res, fmt.Errorf("read input: %w", err)
				default:
				}
				r.metrics.SessionFinished(metric.OutcomeEOF)
				log.Info("input ended before two operands", "state", res.State.String(), "rejected", res.Rejected)
				return res, nil
			}

			lineNo++
			if err := r.step(logger.WithFields(ctx, "line", lineNo), &res, line); err != nil {
				return res, err
			}
			if res.State == Done {
				r.metrics.SessionFinished(metric.OutcomeCompleted)
				return res, nil
			}
			r.promptFor(res.State)
		}
	}
}

// step feeds one line to the state machine.
func (r *REPL) step(ctx context.Context, res *Result, line string) error {
	token := strings.TrimSpace(line)

	n, err := r.calc.Parse(ctx, token)
	if err != nil {
		r.transcript.Add(Entry{Line: token, Accepted: false, State: res.State})
		res.Rejected++
		if _, werr := fmt.Fprintln(r.errOutput, InvalidInputMessage); werr != nil {
			return fmt.Errorf("write diagnostic: %w", werr)
		}
		if res.State == AwaitingSecond && r.policy == PolicyRestart {
			logger.L(ctx).Debug("first operand discarded", "policy", string(r.policy))
			res.First = bignum.SignedInteger{}
			res.State = AwaitingFirst
		}
		return nil
	}

	r.transcript.Add(Entry{Line: token, Accepted: true, State: res.State})

	switch res.State {
	case AwaitingFirst:
		res.First = n
		res.State = AwaitingSecond
	case AwaitingSecond:
		res.Second = n
		res.Sum = r.calc.Add(ctx, res.First, res.Second)
		if err := r.formatter.Format(r.output, output.Result{Sum: res.Sum.String()}); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		res.State = Done
	}
	return nil
}

func (r *REPL) promptFor(s State) {
	if !r.prompt {
		return
	}
	switch s {
	case AwaitingFirst:
		fmt.Fprint(r.errOutput, FirstPrompt)
	case AwaitingSecond:
		fmt.Fprint(r.errOutput, SecondPrompt)
	}
}

func (r *REPL) logTranscript(log logger.Logger) {
	for i, e := range r.transcript.Entries() {
		log.Debug("transcript",
			"index", i,
			"state", e.State.String(),
			"accepted", e.Accepted,
			"line", logger.Operand(e.Line),
		)
	}
	if d := r.transcript.Dropped(); d > 0 {
		log.Debug("transcript truncated", "dropped", d)
	}
}

// readLines pushes input lines to lines until EOF, a read error or ctx is
// done, then closes lines. A read error is sent on errc before closing.
func readLines(ctx context.Context, input io.Reader, lines chan<- string, errc chan<- error) {
	defer close(lines)

	reader := bufio.NewReader(input)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			errc <- err
			return
		}
	}
}
