// Command docpage renders Markdown documentation files into HTML pages.
//
// Usage:
//
//	docpage [flags] <file.md> [<file.md>...]
//	docpage doctor [--json]
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	docpage "github.com/rezkam/docpage"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}
	if flags.version {
		fmt.Println(Version)
		return ExitSuccess
	}

	cfg := DefaultConfig()
	if flags.config != "" {
		cfg, err = LoadConfig(flags.config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitCodeFor(err)
		}
	}

	logger, err := newLogger(cfg.Log, flags.verbose, flags.quiet)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			logger.Debug(fmt.Sprintf(format, args...))
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if len(inputs) > 0 && inputs[0] == "doctor" {
		return runDoctorCmd(flags, cfg, os.Stdout)
	}

	renderer := newRenderer(flags, cfg)
	if err := run(context.Background(), inputs, renderer, logger, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// newRenderer builds the document renderer from flags and config.
func newRenderer(flags *cliFlags, cfg *Config) *docpage.Renderer {
	var opts []docpage.Option
	if candidates := templateCandidates(flags, cfg); len(candidates) > 0 {
		opts = append(opts, docpage.WithTemplateCache(docpage.NewTemplateCache(candidates...)))
	}
	if cfg.Render.FallbackTitle != "" {
		opts = append(opts, docpage.WithFallbackTitle(cfg.Render.FallbackTitle))
	}
	return docpage.NewRenderer(opts...)
}

// templateCandidates resolves the template search list: an explicit
// --template wins, then the configured path, then the library's default
// discovery (signalled by nil).
func templateCandidates(flags *cliFlags, cfg *Config) []string {
	if flags.template != "" {
		return []string{flags.template}
	}
	if cfg.Template.Path != "" {
		return []string{cfg.Template.Path}
	}
	return nil
}
