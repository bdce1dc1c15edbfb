package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel names the environment variable consulted when no level is given.
const EnvLevel = "FRAMER_LOG_LEVEL"

// Init initializes the global logger. level is one of debug, info, warn,
// error; empty falls back to FRAMER_LOG_LEVEL and then to warn, so normal
// runs only show problems.
func Init(level string) {
	InitWriter(os.Stderr, level)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, level string) {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)})
}

// ParseLevel maps a level name onto a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
