package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command-line flags.
type cliFlags struct {
	config   string
	template string
	verbose  bool
	quiet    bool
	version  bool
	jsonOut  bool
}

// parseFlags parses args (including the program name) and returns the
// flags plus remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("docpage", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config name or YAML file path")
	fs.StringVarP(&f.template, "template", "t", "", "template.html path (overrides discovery)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "log errors only")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVar(&f.jsonOut, "json", false, "machine-readable doctor output")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
