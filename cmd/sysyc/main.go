package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/tinyrange/sysy/internal/config"
	"github.com/tinyrange/sysy/internal/driver"
	"github.com/tinyrange/sysy/internal/errors"
)

type options struct {
	configPath string
	format     string
	width      int
	logLevel   string
	noColor    bool
	maxDepth   int
}

func newRootCommand(exitCode *int) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "sysyc [flags] <input>",
		Short: "Parse a SysY program and print its syntax tree",
		Long: `sysyc parses one SysY source file and prints its syntax tree.

The default output is the canonical single-line form. --format pretty
breaks it over several lines, --format json emits a JSON document and
--format json-indent the same document laid out over several lines.

Exit codes:
  0   success
  1   the input could not be read
  2   the input does not parse
  3   the tree is malformed
  64  invalid flags or configuration`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			*exitCode = driver.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run(args[0])
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "configuration file (.toml, .yaml or .yml)")
	flags.StringVar(&opts.format, "format", config.FormatText, "output format: text, pretty, json or json-indent")
	flags.IntVar(&opts.width, "width", 80, "line width for --format pretty and json-indent")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "maximum nesting depth accepted by the parser")

	return cmd
}

// loadConfig reads the configuration file, if any, and applies the flags
// that were set explicitly on top of it.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("no-color") {
		cfg.Color = !opts.noColor
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = opts.maxDepth
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError("", err)
	}
	return cfg, nil
}

func main() {
	exitCode := errors.ExitOK
	cmd := newRootCommand(&exitCode)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		var configErr *errors.ConfigError
		if !xerrors.As(err, &configErr) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		os.Exit(errors.ExitUsage)
	}
	os.Exit(exitCode)
}
