package config

import (
	"flag"
	"os"

	"github.com/bettybooth/bettybooth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the document/identity backend
//	-b string   public base URL for media locators
//	-r int      gallery fetch retry count
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIEndpoint, "a", cfg.APIEndpoint, "backend API base URL")
	fs.StringVar(&cfg.MediaBaseURL, "b", cfg.MediaBaseURL, "public media base URL")
	fs.IntVar(&cfg.FetchRetries, "r", cfg.FetchRetries, "gallery fetch retry count")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
