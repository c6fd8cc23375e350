// Package commands implements the devops subcommands.
package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/97gamjak/devops/internal/cli/config"
	"github.com/97gamjak/devops/internal/cli/output"
	"github.com/97gamjak/devops/pkg/check"
	_ "github.com/97gamjak/devops/pkg/check/rules" // register built-in rules
	"github.com/spf13/cobra"
)

// CommandContext holds the dependencies every command needs: the
// loaded configuration, the component loggers, and the renderer.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger // cpp component, drives the check engine
	GitLog   *slog.Logger // utils component, drives git and changelog
	Renderer *output.Renderer
}

// NewCommandContext builds the context for a command invocation.
// formatOverride, when non-empty, wins over the configured output
// format (commands pass their own --format flag value through).
func NewCommandContext(cmd *cobra.Command, formatOverride string) *CommandContext {
	cfg := getConfig()

	format := cfg.OutputFormat
	if formatOverride != "" {
		format = formatOverride
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
	if noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color"); noColor {
		r.DisableColor()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetCppLogger(cmd.Context()),
		GitLog:   config.GetUtilsLogger(cmd.Context()),
		Renderer: r,
	}
}

// getConfig returns the loaded configuration, falling back to the
// built-in defaults when a command runs without the root command's
// setup (tests construct commands directly).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Cpp: config.CppConfig{
			LicenseHeaderCheck: true,
			StyleChecks:        true,
			Jobs:               config.DefaultJobs,
			HeaderGuards: config.HeaderGuardConfig{
				PathBased:     true,
				Prefix:        config.DefaultGuardPrefix,
				Suffix:        config.DefaultGuardSuffix,
				StripPrefixes: config.DefaultGuardStripPrefixes,
			},
		},
		File: config.FileConfig{
			Encoding:         config.DefaultEncoding,
			HeaderExtensions: config.DefaultHeaderExtensions,
			SourceExtensions: config.DefaultSourceExtensions,
			Changelog:        config.DefaultChangelog,
		},
		Git:          config.GitConfig{TagPrefix: config.DefaultTagPrefix},
		Exclude:      config.ExcludeConfig{Dirs: config.DefaultExcludeDirs},
		OutputFormat: config.DefaultOutput,
	}
}

// newResolver builds the file set resolver for the working
// directory.
func newResolver(cfg *config.Config) (*check.Resolver, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &check.Resolver{
		Root:       root,
		HeaderExts: cfg.File.HeaderExtensions,
		SourceExts: cfg.File.SourceExtensions,
		IgnoreDirs: cfg.Exclude.Dirs,
	}, nil
}

// newCodec builds the text codec for the configured encoding. The
// encoding was validated at startup, so failures here are limited
// to programmer error.
func newCodec(cfg *config.Config) (*check.Codec, error) {
	codec, err := check.NewCodec(cfg.File.Encoding)
	if err != nil {
		return nil, &config.Error{Err: err}
	}
	return codec, nil
}

// buildRuleConfig maps the TOML configuration and the repeatable
// --disable flag onto the engine's rule config. Struct-derived
// options come first; [rules.options.<ID>] entries override them
// key by key.
func buildRuleConfig(cfg *config.Config, disable []string) (*check.Config, error) {
	rc := check.NewConfig()

	header, err := cfg.LicenseHeader()
	if err != nil {
		return nil, err
	}
	rc.SetRuleOption("LH01", "header", header)
	rc.SetRuleOption("LH01", "owner", cfg.License.Owner)
	rc.SetRuleOption("LH01", "year", cfg.License.Year)

	hg := cfg.Cpp.HeaderGuards
	rc.SetRuleOption("HG01", "enforce_format", hg.EnforceFormat)
	rc.SetRuleOption("HG01", "path_based", hg.PathBased)
	rc.SetRuleOption("HG01", "prefix", hg.Prefix)
	rc.SetRuleOption("HG01", "suffix", hg.Suffix)
	rc.SetRuleOption("HG01", "macro", hg.Macro)
	rc.SetRuleOption("HG01", "strip_prefixes", hg.StripPrefixes)

	for id, opts := range cfg.Rules.Options {
		for key, value := range opts {
			rc.SetRuleOption(id, key, value)
		}
	}

	if !cfg.Cpp.LicenseHeaderCheck {
		rc.Disable("LH01")
	}
	if !cfg.Cpp.StyleChecks {
		rc.Disable("HG01")
		rc.Disable("KW01")
	}
	for _, id := range cfg.Rules.Disabled {
		rc.Disable(strings.TrimSpace(id))
	}
	for _, id := range disable {
		rc.Disable(strings.TrimSpace(id))
	}

	return rc, nil
}
