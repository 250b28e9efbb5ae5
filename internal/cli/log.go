package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// newLogger returns a slog.Logger backed by a charmbracelet handler that
// writes to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	var formatter charmlog.Formatter
	switch strings.ToLower(format) {
	case "text", "":
		formatter = charmlog.TextFormatter
	case "logfmt":
		formatter = charmlog.LogfmtFormatter
	case "json":
		formatter = charmlog.JSONFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:     lvl,
		Formatter: formatter,
		Prefix:    "flexpath",
	})
	return slog.New(h), nil
}
