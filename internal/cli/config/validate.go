package config

import (
	"fmt"
	"os"

	"github.com/97gamjak/devops/internal/logging"
	"github.com/97gamjak/devops/pkg/check"
)

// Validate rejects configurations the commands could not act on:
// unknown encoding or level names, a negative job count, or a
// license header file that cannot be read. Every failure is a
// *Error so the caller exits with the configuration error code
// before any file is checked.
func (c *Config) Validate() error {
	if _, err := check.NewCodec(c.File.Encoding); err != nil {
		return &Error{Err: err}
	}

	levels := map[string]string{
		"logging.global_level": c.Logging.GlobalLevel,
		"logging.utils_level":  c.Logging.UtilsLevel,
		"logging.config_level": c.Logging.ConfigLevel,
		"logging.cpp_level":    c.Logging.CppLevel,
	}
	for key, name := range levels {
		if name == "" {
			continue
		}
		if _, err := logging.ParseLevel(name); err != nil {
			return &Error{Err: fmt.Errorf("%s: %w", key, err)}
		}
	}

	if c.Cpp.Jobs < 0 {
		return &Error{Err: fmt.Errorf("cpp.jobs must not be negative, got %d", c.Cpp.Jobs)}
	}

	if c.Cpp.LicenseHeaderFile != "" {
		if _, err := os.ReadFile(c.Cpp.LicenseHeaderFile); err != nil {
			return &Error{Err: fmt.Errorf("cpp.license_header_file: %w", err)}
		}
	}

	return nil
}

// LicenseHeader returns the effective header text: the contents of
// cpp.license_header_file when set, the cpp.license_header string
// otherwise. Empty means no header is configured and the license
// rule stays inactive.
func (c *Config) LicenseHeader() (string, error) {
	if c.Cpp.LicenseHeaderFile == "" {
		return c.Cpp.LicenseHeader, nil
	}
	raw, err := os.ReadFile(c.Cpp.LicenseHeaderFile)
	if err != nil {
		return "", &Error{Err: fmt.Errorf("cpp.license_header_file: %w", err)}
	}
	return string(raw), nil
}

// LevelNames maps the logging section onto the logging package's
// per-component level names. Verbose overrides every level with
// DEBUG.
func (c *Config) LevelNames() logging.LevelNames {
	if c.Verbose {
		return logging.LevelNames{
			Global: "DEBUG", Utils: "DEBUG", Config: "DEBUG", Cpp: "DEBUG",
		}
	}
	return logging.LevelNames{
		Global: c.Logging.GlobalLevel,
		Utils:  c.Logging.UtilsLevel,
		Config: c.Logging.ConfigLevel,
		Cpp:    c.Logging.CppLevel,
	}
}
