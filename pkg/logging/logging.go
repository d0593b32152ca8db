package logging

import (
	"log/slog"
	"strings"
)

// Setup sets the level of the default slog logger from a name such as
// "debug" or "WARN". Empty or unknown names select info.
func Setup(level string) slog.Level {
	lvl := slog.LevelInfo
	if level != "" {
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
			slog.Warn("Unknown log level, using info", "level", level)
			lvl = slog.LevelInfo
		}
	}

	slog.SetLogLoggerLevel(lvl)
	return lvl
}
