// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// ParseLevel maps a case-insensitive level name to a zerolog level. Unknown
// names fall back to info.
func ParseLevel(level string) (zerolog.Level, bool) {
	l, ok := logLevelMatches[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		return zerolog.InfoLevel, false
	}
	return l, true
}

// Levels returns the accepted level names.
func Levels() []string {
	return []string{"none", "trace", "debug", "info", "warn", "error", "fatal"}
}

func isTerminalAttached(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}

func consoleWriter(out io.Writer) io.Writer {
	if f, ok := out.(*os.File); ok && isTerminalAttached(f) {
		return zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: "2006-01-02 15:04:05",
		}
	}
	return out
}

// Setup points the global logger at stderr, or at file when set, and applies
// level. The returned close func releases the log file; it is never nil.
func Setup(level, file string) (zerolog.Logger, func(), error) {
	return setup(os.Stderr, level, file)
}

func setup(out io.Writer, level, file string) (zerolog.Logger, func(), error) {
	lvl, ok := ParseLevel(level)
	zerolog.SetGlobalLevel(lvl)

	closeFn := func() {}
	w := consoleWriter(out)
	if file != "" {
		f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	if !ok && level != "" {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
	return log.Logger, closeFn, nil
}

// Enabled checks if a specific logging level is enabled.
func Enabled(level zerolog.Level) bool {
	return level >= zerolog.GlobalLevel()
}
