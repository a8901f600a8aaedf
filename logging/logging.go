package logging

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/lmittmann/tint"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// This is handled this way so that the CLI config doesn't need to be passed
// to every function in the project.
var (
	Mode Flag = Nil
)

func (f Flag) String() string {
	switch f {
	case Nil: return "nil"
	case Performance: return "performance"
	case Debug: return "debug"
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// ParseFlag reads a log level name. The slog level names "warn", "info" and
// "debug" are accepted as aliases.
func ParseFlag(s string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nil", "none", "warn": return Nil, nil
	case "performance", "info": return Performance, nil
	case "debug": return Debug, nil
	}
	return Nil, fmt.Errorf("unrecognized log level '%s'", s)
}

// Level is the slog level a Flag logs at.
func (f Flag) Level() slog.Level {
	switch f {
	case Performance: return slog.LevelInfo
	case Debug: return slog.LevelDebug
	}
	return slog.LevelWarn
}

// New returns a tint logger writing to w at the level of mode.
func New(w io.Writer, mode Flag, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level: mode.Level(),
		TimeFormat: "15:04:05",
		NoColor: noColor,
	}))
}

// MemAttr returns an attribute group containing various statistics on the
// current memory usage of the process, in MB.
func MemAttr() slog.Attr {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return slog.Group("mem",
		slog.Uint64("alloc", ms.Alloc >> 20),
		slog.Uint64("sys", ms.Sys >> 20),
		slog.Uint64("integrated", ms.TotalAlloc >> 20),
	)
}
