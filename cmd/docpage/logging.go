package main

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// newLogger builds the CLI logger from config, with --verbose and
// --quiet taking precedence over the configured level.
func newLogger(cfg LogConfig, verbose, quiet bool) (*glog.BaseLogger, error) {
	level := cfg.Level
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "error"
	}

	var options []glog.Option
	if normalized := normalizeLevel(level); normalized != "" {
		options = append(options, glog.WithLevel(normalized))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	return glog.NewLogger(options...), nil
}

// normalizeLevel maps config level names to go-logger levels. Unknown
// names fall back to the logger default.
func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}
