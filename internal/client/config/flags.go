package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/capcheck/internal/flagx"
)

var knownFlags = []string{
	"-a", "-d", "-u", "-q", "-l", "-w", "-k", "-t", "-i",
	"-log-level", "-log-format", "-sentry-dsn",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the photo service
//	-d string   path to the local SQLite database
//	-u string   identity written on first launch ("" generates one)
//	-q float    JPEG compression quality in (0, 1]
//	-l string   directory relative image paths are resolved against
//	-w string   directory holding the preupload folder
//	-k          keep the previous feed when a reload fails
//	-t duration request timeout (0 means none)
//	-i int      online check interval in seconds (0 disables)
//	-log-level, -log-format, -sentry-dsn
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with the -c/-config lookup.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the photo service")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local database")
	fs.StringVar(&cfg.DefaultUserID, "u", cfg.DefaultUserID, "identity written on first launch")
	fs.Float64Var(&cfg.CompressionQuality, "q", cfg.CompressionQuality, "JPEG compression quality")
	fs.StringVar(&cfg.LibraryDir, "l", cfg.LibraryDir, "image library directory")
	fs.StringVar(&cfg.WorkDir, "w", cfg.WorkDir, "working directory for compressed images")
	fs.BoolVar(&cfg.KeepFeedOnError, "k", cfg.KeepFeedOnError, "keep the feed when a reload fails")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console or json")
	fs.StringVar(&cfg.SentryDSN, "sentry-dsn", cfg.SentryDSN, "Sentry DSN for error reports")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
