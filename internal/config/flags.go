package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/newsboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only the flags listed in the package documentation are considered; args
// is filtered with flagx.FilterArgs so commands may carry their own flags.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-s", "-q", "-a", "-k", "-t", "-l"})

	fs := flag.NewFlagSet("newsboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (file|sqlite)")
	fs.StringVar(&cfg.SQLiteDSN, "q", cfg.SQLiteDSN, "sqlite dsn")
	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "http listen address")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "jwt signing secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	tokenValidity := fs.Int("t", int(cfg.TokenValidity.Minutes()), "token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.TokenValidity = time.Duration(*tokenValidity) * time.Minute
		}
	})
	return nil
}
