package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/subrosa-io/steg/internal/logger"
)

var (
	password  string
	logLevel  string
	logFormat string
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "password",
			Aliases:     []string{"p"},
			Usage:       "mask password (empty: no masking)",
			Destination: &password,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       "text",
			Destination: &logFormat,
		},
	}
}

// newLogger builds the command logger from flags, with config file
// values filling in anything the flags left at defaults.
func newLogger(c *cli.Command, cfg Config) *slog.Logger {
	level := logLevel
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		level = cfg.LogLevel
	}
	format := logFormat
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		format = cfg.LogFormat
	}
	return logger.New(os.Stderr, logger.ParseLevel(level), format)
}
