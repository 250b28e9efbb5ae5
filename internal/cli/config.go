package cli

import (
	"strconv"

	"github.com/spf13/pflag"
)

// Environment variables consulted when the matching flag is not given.
const (
	envVariant   = "FLEXPATH_VARIANT"
	envOutput    = "FLEXPATH_OUTPUT"
	envLogLevel  = "FLEXPATH_LOG_LEVEL"
	envLogFormat = "FLEXPATH_LOG_FORMAT"
	envWorkers   = "FLEXPATH_WORKERS"
)

const defaultWorkers = 4

type config struct {
	variant   string
	output    string
	logLevel  string
	logFormat string
}

func (c *config) bindFlags(fs *pflag.FlagSet, getenv func(string) string) {
	fs.StringVar(&c.variant, "variant", envOr(getenv, envVariant, "native"),
		"path grammar: common, windows or native (env "+envVariant+")")
	fs.StringVarP(&c.output, "output", "o", envOr(getenv, envOutput, formatText),
		"output format: text, json or yaml (env "+envOutput+")")
	fs.StringVar(&c.logLevel, "log-level", envOr(getenv, envLogLevel, "warn"),
		"log level: debug, info, warn or error (env "+envLogLevel+")")
	fs.StringVar(&c.logFormat, "log-format", envOr(getenv, envLogFormat, "text"),
		"log format: text, logfmt or json (env "+envLogFormat+")")
}

func envOr(getenv func(string) string, key, fallback string) string {
	if getenv == nil {
		return fallback
	}
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

// envIntOr is envOr for integers; unparsable values fall back.
func envIntOr(getenv func(string) string, key string, fallback int) int {
	n, err := strconv.Atoi(envOr(getenv, key, ""))
	if err != nil {
		return fallback
	}
	return n
}
