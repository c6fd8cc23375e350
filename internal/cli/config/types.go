// Package config loads and validates the project-local devops.toml
// configuration. The loaded Config struct is handed to the commands
// explicitly; nothing in the check engine reads configuration from
// ambient state.
package config

import "fmt"

// Default configuration values. The generated template repeats them
// as comments, so keep both in sync.
const (
	DefaultEncoding  = "utf-8"
	DefaultChangelog = "CHANGELOG.md"
	DefaultTagPrefix = "v"
	DefaultLogLevel  = "INFO"
	DefaultJobs      = 1

	DefaultGuardPrefix = "__"
	DefaultGuardSuffix = "_HPP__"

	DefaultOutput = "auto"
)

// DefaultHeaderExtensions classify header files.
var DefaultHeaderExtensions = []string{".h", ".hpp"}

// DefaultSourceExtensions classify implementation files.
var DefaultSourceExtensions = []string{".c", ".cc", ".cpp", ".cxx"}

// DefaultExcludeDirs are never descended into when resolving files.
var DefaultExcludeDirs = []string{".git", "build"}

// DefaultGuardStripPrefixes are removed from the relative path before
// a header guard macro is derived from it.
var DefaultGuardStripPrefixes = []string{"include/", "test/"}

// Error reports an unusable configuration: malformed TOML, an
// unknown level or encoding name, or an unreadable license header
// file. It is fatal at startup and maps to its own exit code.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("config: %v", e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Config holds every option the CLI understands, populated from
// defaults, the project file, DEVOPS_ environment variables, and
// flags, in that order of precedence.
type Config struct {
	Cpp     CppConfig     `koanf:"cpp"`
	File    FileConfig    `koanf:"file"`
	Git     GitConfig     `koanf:"git"`
	Logging LoggingConfig `koanf:"logging"`
	Exclude ExcludeConfig `koanf:"exclude"`
	Rules   RulesConfig   `koanf:"rules"`
	License LicenseConfig `koanf:"license"`

	// OutputFormat is the --format value: auto, text, or json.
	OutputFormat string `koanf:"output"`
	// Verbose forces DEBUG logging for every component.
	Verbose bool `koanf:"verbose"`

	// Warnings collects non-fatal findings from loading, e.g. an
	// ambiguous project file. The root command logs them once the
	// loggers exist.
	Warnings []string `koanf:"-"`
}

// CppConfig controls the hygiene checks.
type CppConfig struct {
	// LicenseHeader is the exact expected header text.
	LicenseHeader string `koanf:"license_header"`
	// LicenseHeaderFile reads the header text from a file instead.
	// When set it wins over LicenseHeader.
	LicenseHeaderFile string `koanf:"license_header_file"`
	// LicenseHeaderCheck switches the license rule on.
	LicenseHeaderCheck bool `koanf:"license_header_check"`
	// StyleChecks switches the guard and keyword rules on.
	StyleChecks bool `koanf:"style_checks"`
	// CheckOnlyStagedFiles restricts checking to the git index.
	CheckOnlyStagedFiles bool `koanf:"check_only_staged_files"`
	// Jobs caps concurrent file checks. One means serial.
	Jobs int `koanf:"jobs"`

	HeaderGuards HeaderGuardConfig `koanf:"header_guards"`
}

// HeaderGuardConfig parameterizes the header guard rule.
type HeaderGuardConfig struct {
	EnforceFormat bool     `koanf:"enforce_format"`
	PathBased     bool     `koanf:"path_based"`
	Prefix        string   `koanf:"prefix"`
	Suffix        string   `koanf:"suffix"`
	Macro         string   `koanf:"macro"`
	StripPrefixes []string `koanf:"strip_prefixes"`
}

// FileConfig controls how target files are found and decoded.
type FileConfig struct {
	Encoding         string   `koanf:"encoding"`
	HeaderExtensions []string `koanf:"header_extensions"`
	SourceExtensions []string `koanf:"source_extensions"`
	Changelog        string   `koanf:"changelog"`
}

// GitConfig controls the tag commands.
type GitConfig struct {
	TagPrefix string `koanf:"tag_prefix"`
	// EmptyTagListAllowed makes the zero tag the latest one when the
	// repository has no release tags yet.
	EmptyTagListAllowed bool `koanf:"empty_tag_list_allowed"`
}

// LoggingConfig holds the level name per component. Empty component
// levels inherit GlobalLevel.
type LoggingConfig struct {
	GlobalLevel string `koanf:"global_level"`
	UtilsLevel  string `koanf:"utils_level"`
	ConfigLevel string `koanf:"config_level"`
	CppLevel    string `koanf:"cpp_level"`
}

// ExcludeConfig lists what checking skips.
type ExcludeConfig struct {
	// Dirs are directory basenames the resolver never enters.
	Dirs []string `koanf:"dirs"`
	// BuggyCppMacros names macros whose invocation excludes a file
	// from checking entirely.
	BuggyCppMacros []string `koanf:"buggy_cpp_macros"`
}

// RulesConfig switches individual rules off and overrides their
// options.
type RulesConfig struct {
	Disabled []string                  `koanf:"disabled"`
	Options  map[string]map[string]any `koanf:"options"`
}

// LicenseConfig supplies values for the {owner} and {year}
// placeholders in the header text.
type LicenseConfig struct {
	Owner string `koanf:"owner"`
	Year  string `koanf:"year"`
}
