package config

import (
	"flag"
	"os"
	"time"

	"github.com/TRu-S3/hackmatch-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   backend base URL
//	-f string   credential cache file
//	-t int      request timeout in seconds
//	-p string   forwarder server listen address
//
// The args are filtered with flagx.FilterArgs so flags owned by other
// components (like -c/-config) pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-t", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendBaseURL, "b", cfg.BackendBaseURL, "backend base URL")
	fs.StringVar(&cfg.CredentialFile, "f", cfg.CredentialFile, "credential cache file")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.ProxyAddr, "p", cfg.ProxyAddr, "forwarder server listen address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
