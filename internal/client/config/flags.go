package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/studykeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   endpoint URL (default from Config)
//	-l string   log level (default from Config)
//
// Each flag may also be written with two dashes (--u, --l).
//
// args are filtered with flagx.FilterArgs first, so flags owned by other
// parsers (such as -c) do not cause errors here.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("studykeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointURL, "u", cfg.EndpointURL, "URL of the remote endpoint")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	return fs.Parse(flagx.FilterArgs(args, []string{"-u", "-l", "--u", "--l"}))
}
