package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/bigsum-go/internal/cli/config"
	"github.com/yndnr/bigsum-go/internal/infra/buildinfo"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitInterrupted = 130
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:            "bigsum",
		Usage:           "Add two arbitrarily large signed integers read one per line from stdin",
		UsageText:       "bigsum [global options]\n   bigsum [global options] config <show|validate>",
		Version:         buildinfo.Get().Version,
		HideVersion:     true,
		HideHelpCommand: true,
		Flags:           globalFlags(),
		Commands: []*cli.Command{
			ConfigCommand(),
		},
		Action: sessionAction,
		// Exit codes are decided by Run.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// globalFlags returns the global CLI flags.
//
// Only --config reads an environment variable here. Every other setting is
// also reachable as BIGSUM_<SECTION>_<KEY> through the config loader.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
			EnvVars: []string{"BIGSUM_CONFIG"},
		},
		&cli.IntFlag{
			Name:  "max-digits",
			Usage: "Maximum significant digits per operand",
			Value: config.DefaultMaxDigits,
		},
		&cli.StringFlag{
			Name:  "on-invalid",
			Usage: "Invalid line after the first operand: keep or restart",
			Value: config.DefaultOnInvalid,
		},
		&cli.BoolFlag{
			Name:  "prompt",
			Usage: "Write prompts to stderr before each read",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Result format: plain, json, yaml",
			Value:   config.DefaultOutputFormat,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
			Value: config.DefaultLogLevel,
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: console, json",
			Value: config.DefaultLogFormat,
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write session metrics in Prometheus text format to this file at exit",
		},
		&cli.BoolFlag{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "Print version information and exit",
		},
	}
}

// flagOverrides returns the config keys of flags given explicitly on the
// command line, so unset flag defaults never mask the file or environment.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)

	if c.IsSet("max-digits") {
		overrides["limits.max_digits"] = c.Int("max-digits")
	}
	if c.IsSet("on-invalid") {
		overrides["session.on_invalid"] = c.String("on-invalid")
	}
	if c.IsSet("prompt") {
		overrides["session.prompt"] = c.Bool("prompt")
	}
	if c.IsSet("output") {
		overrides["output.format"] = c.String("output")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = c.String("log-format")
	}
	if c.IsSet("metrics-file") {
		overrides["metrics.textfile"] = c.String("metrics-file")
	}

	return overrides
}

// loadConfig merges defaults, the config file, environment and flag
// overrides, then verifies the result.
func loadConfig(c *cli.Context) (*config.CLIConfig, error) {
	return config.Load(c.String("config"), flagOverrides(c))
}

// Run executes bigsum with args (args[0] is the program name) over the given
// streams and returns the process exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := App()
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.RunContext(ctx, args)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		PrintError(stderr, "%v", err)
		return ExitError
	}
}

// PrintError prints an error message to w.
func PrintError(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}
