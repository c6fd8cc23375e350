// Package logging maps the configured level names onto log/slog and
// builds the per-component loggers the commands share.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Levels beyond the slog built-ins. CRITICAL sorts above ERROR, NONE
// above everything so a component can be silenced entirely.
const (
	LevelCritical = slog.Level(12)
	LevelNone     = slog.Level(16)
)

// ParseLevel converts a configured level name into a slog level.
// Names are case-insensitive; the empty string is not a level (the
// config layer uses it for "inherit").
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	case "NONE":
		return LevelNone, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// LevelNames holds the configured level name per component. Empty
// component names inherit Global.
type LevelNames struct {
	Global string
	Utils  string
	Config string
	Cpp    string
}

// Loggers bundles the component loggers.
type Loggers struct {
	Global *slog.Logger
	Utils  *slog.Logger
	Config *slog.Logger
	Cpp    *slog.Logger
}

// New builds the component loggers writing to w. Every logger tags
// its records with a component attribute.
func New(w io.Writer, names LevelNames) (*Loggers, error) {
	if names.Global == "" {
		names.Global = "INFO"
	}
	global, err := ParseLevel(names.Global)
	if err != nil {
		return nil, err
	}

	component := func(name, levelName string) (*slog.Logger, error) {
		level := global
		if levelName != "" {
			level, err = ParseLevel(levelName)
			if err != nil {
				return nil, err
			}
		}
		handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
		return slog.New(handler).With("component", name), nil
	}

	loggers := &Loggers{}
	if loggers.Global, err = component("global", names.Global); err != nil {
		return nil, err
	}
	if loggers.Utils, err = component("utils", names.Utils); err != nil {
		return nil, err
	}
	if loggers.Config, err = component("config", names.Config); err != nil {
		return nil, err
	}
	if loggers.Cpp, err = component("cpp", names.Cpp); err != nil {
		return nil, err
	}
	return loggers, nil
}

// Discard returns loggers that drop everything. Used before the
// configuration is loaded and in tests.
func Discard() *Loggers {
	l := slog.New(slog.DiscardHandler)
	return &Loggers{Global: l, Utils: l, Config: l, Cpp: l}
}
