package main

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/corebreaker/hexdump/core"
)

var clog = logrus.New()

var log_levels = map[string]logrus.Level{
	"DEBUG":   logrus.DebugLevel,
	"INFO":    logrus.InfoLevel,
	"WARNING": logrus.WarnLevel,
	"ERROR":   logrus.ErrorLevel,
	"PANIC":   logrus.PanicLevel,
}

// setup_logging sends the logs to output, which must never be the stream the
// dump is written on.
func setup_logging(level string, output io.Writer) error {
	lvl, ok := log_levels[strings.ToUpper(level)]
	if !ok {
		return core.NewKindError(core.KIND_USAGE, "Unknown log level `%s`", level)
	}

	clog.Formatter = new(logrus.TextFormatter)
	clog.Level = lvl
	clog.Out = output

	return nil
}
