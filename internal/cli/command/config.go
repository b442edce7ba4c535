package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/bigsum-go/internal/cli/config"
	"github.com/yndnr/bigsum-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the effective configuration as YAML",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "origins",
						Usage: "Show which source set each key instead of the values",
					},
				},
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration without starting a session",
				Action: configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, origins, err := config.LoadWithOrigins(c.String("config"), flagOverrides(c))
	if err != nil {
		return err
	}

	f := output.NewFormatter(output.FormatYAML)
	if !c.Bool("origins") {
		return f.Format(c.App.Writer, cfg)
	}

	bySource := make(map[string]string, len(origins))
	for _, o := range origins {
		bySource[o.Key] = string(o.Source)
	}
	return f.Format(c.App.Writer, bySource)
}

func configValidate(c *cli.Context) error {
	if _, err := loadConfig(c); err != nil {
		return err
	}

	source := c.String("config")
	if source == "" {
		source = "defaults and environment"
	}
	fmt.Fprintf(c.App.Writer, "Configuration OK (%s)\n", source)
	return nil
}
