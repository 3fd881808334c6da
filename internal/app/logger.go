package app

import (
	"io"
	"log/slog"
)

// logLevels maps CLI level names to slog levels. Unknown names fall back to
// info; the CLI layer validates before we get here.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger creates a configured slog.Logger writing to errW. Logs go to a
// separate writer than result envelopes, so piping the JSON output stays
// clean. The global logger is left untouched.
func newLogger(levelStr, formatStr string, errW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(errW, opts))
	}
	return slog.New(slog.NewTextHandler(errW, opts))
}
