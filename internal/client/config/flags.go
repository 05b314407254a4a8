package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/cobragpt/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string     data directory
//	-n string     database file name
//	-t duration   simulated login/register delay
//	-o duration   simulated logout delay
//	-r duration   simulated assistant reply delay
//	-l string     log level
//
// Only the flags listed above are parsed (see flagx.FilterArgs), so the
// config file flags and anything else on the command line do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-n", "-t", "-o", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.DatabaseName, "n", cfg.DatabaseName, "database file name")
	fs.DurationVar(&cfg.AuthDelay, "t", cfg.AuthDelay, "simulated login/register delay")
	fs.DurationVar(&cfg.LogoutDelay, "o", cfg.LogoutDelay, "simulated logout delay")
	fs.DurationVar(&cfg.ReplyDelay, "r", cfg.ReplyDelay, "simulated assistant reply delay")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
