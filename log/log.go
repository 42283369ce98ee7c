// Package log provides the loggers used across the engine packages.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/arentrue/nksip/internal/errorutil"
	"github.com/arentrue/nksip/sip"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(o *sip.Options) slog.Value {
		if o == nil {
			return slog.Value{}
		}
		return slog.GroupValue(
			slog.Bool("async", o.Async),
			slog.Bool("no_dialog", o.NoDialog),
			slog.Bool("stateless", o.Stateless),
			slog.Any("contact", o.Contact),
			slog.Int("extra", len(o.Extra)),
		)
	}),
	slogformatter.FormatByType(func(v sip.Via) slog.Value {
		return slog.StringValue(v.String())
	}),
)

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

var defLog atomic.Pointer[slog.Logger]

func init() { defLog.Store(Def) }

// Default returns the logger used by components created without an explicit logger.
func Default() *slog.Logger { return defLog.Load() }

// SetDefault replaces the logger returned by [Default].
// Nil resets it to [Def].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = Def
	}
	defLog.Store(l)
}

// Output formats.
const (
	FormatConsole = "console"
	FormatDev     = "dev"
	FormatJSON    = "json"
	FormatText    = "text"
)

// Config describes a logger.
type Config struct {
	// Level is one of "debug", "info", "warn", "error". Default is "info".
	Level string `yaml:"level"`
	// Format is one of [FormatConsole], [FormatDev], [FormatJSON], [FormatText].
	// Default is [FormatConsole].
	Format string `yaml:"format"`
	// File is the output file path, stdout is used if empty.
	File string `yaml:"file"`
	// MaxSizeMB is the size of the file that triggers rotation.
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `yaml:"max_backups"`
	// MaxAgeDays is the number of days to keep rotated files.
	MaxAgeDays int `yaml:"max_age_days"`
	// Compress enables compression of rotated files.
	Compress bool `yaml:"compress"`
}

// ParseLevel parses a textual level. Empty string is parsed as [slog.LevelInfo].
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return lvl, nil
}

// New builds a logger described by the config.
// The returned closer releases the output file and must be called on shutdown.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}

	var out io.WriteCloser = nopCloser{os.Stdout}
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
	}

	var h slog.Handler
	switch cfg.Format {
	case "", FormatConsole:
		h = console.NewHandler(out, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
			NoColor:    cfg.File != "",
		})
	case FormatDev:
		h = devslog.NewHandler(out, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{AddSource: true, Level: lvl},
			SortKeys:       true,
			TimeFormat:     time.RFC3339Nano,
		})
	case FormatJSON:
		h = slog.NewJSONHandler(out, &slog.HandlerOptions{AddSource: true, Level: lvl})
	case FormatText:
		h = slog.NewTextHandler(out, &slog.HandlerOptions{AddSource: true, Level: lvl})
	default:
		out.Close() //nolint:errcheck
		return nil, nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log format %q", cfg.Format))
	}
	return slog.New(newHandler(h)), out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }
