package command

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/bigsum-go/internal/cli/output"
	"github.com/yndnr/bigsum-go/internal/cli/repl"
	"github.com/yndnr/bigsum-go/internal/core/service"
	"github.com/yndnr/bigsum-go/internal/infra/buildinfo"
	"github.com/yndnr/bigsum-go/internal/infra/shutdown"
	"github.com/yndnr/bigsum-go/internal/telemetry/logger"
	"github.com/yndnr/bigsum-go/internal/telemetry/metric"
)

// shutdownTimeout bounds the cleanup hooks.
const shutdownTimeout = 5 * time.Second

// sessionAction runs one interactive session.
func sessionAction(c *cli.Context) error {
	if c.Bool("version") {
		fmt.Fprintf(c.App.Writer, "bigsum %s\n", buildinfo.String())
		return nil
	}
	if c.Args().Present() {
		return fmt.Errorf("unexpected argument %q: operands are read from stdin", c.Args().First())
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.SetDefault(log)()

	policy, err := repl.ParsePolicy(cfg.Session.OnInvalid)
	if err != nil {
		return err
	}

	h := shutdown.NewHandler(shutdownTimeout)
	ctx, stop := h.Notify(c.Context)
	defer stop()

	ctx = logger.WithLogger(ctx, log)
	ctx = logger.WithSessionID(ctx, ulid.Make().String())

	reg := metric.NewRegistry()

	// Hooks run in reverse: metrics first, then the logger flush.
	h.OnShutdown(func(context.Context) error {
		// Sync on a terminal fails with EINVAL on some platforms.
		_ = log.Sync()
		return nil
	})
	h.OnShutdown(func(context.Context) error {
		return reg.WriteTextfile(cfg.Metrics.Textfile)
	})

	calc := service.NewArithmeticService(&service.Config{MaxDigits: cfg.Limits.MaxDigits}, reg)
	session := repl.New(calc, c.App.Reader, c.App.Writer, c.App.ErrWriter,
		repl.WithPolicy(policy),
		repl.WithPrompt(cfg.Session.Prompt),
		repl.WithFormatter(output.NewFormatter(output.Format(cfg.Output.Format))),
		repl.WithTranscriptSize(cfg.Session.TranscriptSize),
		repl.WithRecorder(reg),
	)

	logger.L(ctx).Info("session started",
		"version", buildinfo.Get().Version,
		"max_digits", cfg.Limits.MaxDigits,
		"on_invalid", string(policy),
		"output", cfg.Output.Format,
	)

	res, runErr := session.Run(ctx)
	if runErr != nil && h.Signalled() {
		logger.L(ctx).Warn("session interrupted by signal", "state", res.State.String())
	}

	logger.L(ctx).Info("session finished",
		"state", res.State.String(),
		"rejected", res.Rejected,
	)

	shutdownErr := h.Shutdown()
	if runErr != nil {
		return fmt.Errorf("session: %w", runErr)
	}
	return shutdownErr
}
