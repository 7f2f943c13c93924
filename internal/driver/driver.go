// Package driver runs the front end over one source file: read, parse,
// print, and map the outcome to an exit code.
package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/tinyrange/sysy/internal/ast"
	"github.com/tinyrange/sysy/internal/config"
	"github.com/tinyrange/sysy/internal/errors"
	"github.com/tinyrange/sysy/internal/parser"
	"github.com/tinyrange/sysy/internal/printer"
)

type Driver struct {
	Config *config.Config
	Logger zerolog.Logger
	Stdout io.Writer
	Stderr io.Writer
	au     *aurora.Aurora
}

// New returns a Driver printing trees to stdout and diagnostics to stderr.
// cfg must be valid; a nil cfg selects config.Default().
func New(cfg *config.Config, stdout, stderr io.Writer) *Driver {
	if cfg == nil {
		cfg = config.Default()
	}
	level, err := cfg.Level()
	if err != nil {
		level = zerolog.WarnLevel
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:     stderr,
		NoColor: !cfg.Color,
	}
	return &Driver{
		Config: cfg,
		Logger: zerolog.New(consoleWriter).With().Timestamp().Logger().Level(level),
		Stdout: stdout,
		Stderr: stderr,
		au:     aurora.New(aurora.WithColors(cfg.Color)),
	}
}

// Run processes the file at path and returns the exit code. On success the
// rendered tree and a newline are written to Stdout; on failure Stdout is
// left untouched and a diagnostic goes to Stderr.
func (d *Driver) Run(path string) int {
	log := d.Logger.With().Str("path", path).Logger()

	src, out, err := d.process(log, path)
	if err != nil {
		code := errors.ExitCode(err)
		log.Debug().Err(err).Int("exit", code).Msg("failed")
		d.report(path, src, err)
		return code
	}

	if _, err := io.WriteString(d.Stdout, out+"\n"); err != nil {
		log.Error().Err(err).Msg("cannot write output")
		return errors.ExitIO
	}
	return errors.ExitOK
}

// process returns the source text it read alongside the rendered tree so
// that diagnostics can quote it.
func (d *Driver) process(log zerolog.Logger, path string) (src string, out string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.NewIOError(path, err)
	}
	src = string(data)
	log.Debug().Int("bytes", len(data)).Msg("read input")

	program, err := parser.ParseProgram(src, parser.WithMaxDepth(d.Config.MaxDepth))
	if err != nil {
		return src, "", err
	}
	log.Debug().
		Int("functions", len(program.FuncDefs())).
		Int("declarations", len(program.Declarations())).
		Msg("parsed")

	out, err = d.render(program)
	return src, out, err
}

func (d *Driver) render(program *ast.CompUnit) (string, error) {
	switch d.Config.Format {
	case config.FormatPretty:
		return printer.Pretty(program, d.Config.Width)
	case config.FormatJSON:
		b, err := printer.JSON(program)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case config.FormatIndentJSON:
		b, err := printer.IndentJSON(program, d.Config.Width)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return printer.Serialize(program)
	}
}

func (d *Driver) report(path, src string, err error) {
	message := err.Error()

	var parseErr *errors.ParseError
	isParseErr := xerrors.As(err, &parseErr) && parseErr.Line > 0
	switch {
	case isParseErr:
		message = fmt.Sprintf("%s:%s", path, message)
	case errors.IsInternalError(err):
		message = "internal error: " + message
	}

	fmt.Fprintf(d.Stderr, "%s %s\n", d.au.Bold(d.au.Red("error:")), message)

	if isParseErr {
		if line, caret, ok := excerpt(src, parseErr.Line, parseErr.Column); ok {
			fmt.Fprintf(d.Stderr, "    %s\n    %s\n", line, d.au.Bold(d.au.Green(caret)))
		}
	}
}

// excerpt returns source line number line (1-based) and a marker line
// whose caret sits under column col. Columns count runes; the marker is
// padded to the display width of the text before the column, keeping tabs
// as tabs.
func excerpt(src string, line, col int) (text string, caret string, ok bool) {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) || col < 1 {
		return "", "", false
	}
	text = strings.TrimRight(lines[line-1], "\r")

	runes := []rune(text)
	if col-1 > len(runes) {
		col = len(runes) + 1
	}

	var b strings.Builder
	for _, r := range runes[:col-1] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", uniseg.StringWidth(string(r))))
	}
	b.WriteByte('^')
	return text, b.String(), true
}
