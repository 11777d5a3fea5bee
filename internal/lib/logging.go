package lib

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

// ParseSLogLevel accepts the slog level names (debug, info, warn, error) in any
// case, with an optional offset such as "info+2".
func ParseSLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// NiceLogger logs text to w with the short file name of the caller.
func NiceLogger(w io.Writer, level slog.Level) *slog.Logger {
	// https://www.reddit.com/r/golang/comments/15nwnkl/achieve_lshortfile_with_slog/jy8emik/
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource:   true,
		Level:       level,
		ReplaceAttr: shortSource,
	}))
}

// NewLogger is NiceLogger with the level given by name.
func NewLogger(w io.Writer, levelName string) (*slog.Logger, error) {
	level, err := ParseSLogLevel(levelName)
	if err != nil {
		return nil, err
	}
	return NiceLogger(w, level), nil
}

func shortSource(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.SourceKey {
		return a
	}
	if source, _ := a.Value.Any().(*slog.Source); source != nil {
		source.File = filepath.Base(source.File)
	}
	return a
}
