package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ConfigFileNames are the recognized project file names, in order of
// preference. When both exist in the same directory the file is
// considered ambiguous and ignored.
var ConfigFileNames = []string{"devops.toml", ".devops.toml"}

// maxUpwardSearchLevels limits how far up the directory tree the
// project file search goes.
const maxUpwardSearchLevels = 10

// loggerKey stores the component loggers in the command context.
type loggerKey struct{}

// Package-level koanf instance and config file tracking.
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// ResetConfig resets the loader state. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// findConfigFile locates the project file. An explicit path wins;
// otherwise the working directory and its ancestors are searched.
// The second return value is set when a directory holds both
// recognized names, which makes the project file ambiguous.
func findConfigFile(explicit, startDir string) (string, string) {
	if explicit != "" {
		return explicit, ""
	}

	dir := startDir
	for i := 0; i <= maxUpwardSearchLevels; i++ {
		var found []string
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				found = append(found, candidate)
			}
		}
		switch len(found) {
		case 1:
			return found[0], ""
		case 2:
			return "", dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// defaults returns the built-in configuration as a flat confmap.
func defaults() map[string]any {
	return map[string]any{
		"cpp.license_header":              "",
		"cpp.license_header_file":         "",
		"cpp.license_header_check":        true,
		"cpp.style_checks":                true,
		"cpp.check_only_staged_files":     false,
		"cpp.jobs":                        DefaultJobs,
		"cpp.header_guards.enforce_format": false,
		"cpp.header_guards.path_based":     true,
		"cpp.header_guards.prefix":         DefaultGuardPrefix,
		"cpp.header_guards.suffix":         DefaultGuardSuffix,
		"cpp.header_guards.macro":          "",
		"cpp.header_guards.strip_prefixes": DefaultGuardStripPrefixes,
		"file.encoding":                   DefaultEncoding,
		"file.header_extensions":          DefaultHeaderExtensions,
		"file.source_extensions":          DefaultSourceExtensions,
		"file.changelog":                  DefaultChangelog,
		"git.tag_prefix":                  DefaultTagPrefix,
		"git.empty_tag_list_allowed":      false,
		"logging.global_level":            DefaultLogLevel,
		"logging.utils_level":             "",
		"logging.config_level":            "",
		"logging.cpp_level":               "",
		"exclude.dirs":                    DefaultExcludeDirs,
		"exclude.buggy_cpp_macros":        []string{},
		"rules.disabled":                  []string{},
		"license.owner":                   "",
		"license.year":                    "",
		"output":                          DefaultOutput,
		"verbose":                         false,
	}
}

// LoadConfig loads configuration from defaults, the project file,
// DEVOPS_ environment variables, and explicitly set flags, in that
// order of precedence. Any failure is a *Error, fatal at startup.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	var warnings []string

	// 1. Built-in defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, &Error{Err: fmt.Errorf("loading defaults: %w", err)}
	}

	// 2. Project file.
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	found, ambiguousDir := findConfigFile(cfgFile, cwd)
	if ambiguousDir != "" {
		warnings = append(warnings, fmt.Sprintf(
			"both devops.toml and .devops.toml exist in %s, ignoring the project file", ambiguousDir))
	}
	configFileUsed = found
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), toml.Parser()); err != nil {
			return nil, &Error{Err: fmt.Errorf("reading %s: %w", configFileUsed, err)}
		}
	}

	// 3. Environment variables: DEVOPS_CPP__STYLE_CHECKS=false sets
	// cpp.style_checks.
	if err := k.Load(env.Provider("DEVOPS_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "DEVOPS_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, &Error{Err: fmt.Errorf("loading environment: %w", err)}
	}

	// 4. Flags the user actually changed.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			switch f.Name {
			case "format":
				return "output", posflag.FlagVal(flags, f)
			case "verbose":
				return "verbose", posflag.FlagVal(flags, f)
			default:
				// The remaining persistent flags are not config keys.
				return "", nil
			}
		}), nil); err != nil {
			return nil, &Error{Err: fmt.Errorf("loading flags: %w", err)}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, &Error{Err: fmt.Errorf("decoding configuration: %w", err)}
	}
	cfg.Warnings = warnings

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	currentConfig = &cfg
	return &cfg, nil
}

// GetConfigFileUsed returns the project file path in effect, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the configuration loaded by the last
// LoadConfig call, or nil before the first.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key the root command stores the
// component loggers under. Shared here so the commands package can
// read them without importing the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the global component logger from the command
// context. Absent loggers fall back to discard, so callers never
// nil-check.
func GetLogger(ctx context.Context) *slog.Logger {
	if l := loggersFrom(ctx); l != nil {
		return l.global
	}
	return slog.New(slog.DiscardHandler)
}

// GetCppLogger retrieves the checks component logger.
func GetCppLogger(ctx context.Context) *slog.Logger {
	if l := loggersFrom(ctx); l != nil {
		return l.cpp
	}
	return slog.New(slog.DiscardHandler)
}

// GetUtilsLogger retrieves the utilities component logger, used by
// the git and changelog collaborators.
func GetUtilsLogger(ctx context.Context) *slog.Logger {
	if l := loggersFrom(ctx); l != nil {
		return l.utils
	}
	return slog.New(slog.DiscardHandler)
}

// contextLoggers is the value stored under loggerKey.
type contextLoggers struct {
	global *slog.Logger
	utils  *slog.Logger
	cpp    *slog.Logger
}

// WithLoggers stores the component loggers on a context.
func WithLoggers(ctx context.Context, global, utils, cpp *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, &contextLoggers{
		global: global,
		utils:  utils,
		cpp:    cpp,
	})
}

func loggersFrom(ctx context.Context) *contextLoggers {
	if l, ok := ctx.Value(loggerKey{}).(*contextLoggers); ok {
		return l
	}
	return nil
}
