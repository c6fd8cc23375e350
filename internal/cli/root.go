// Package cli provides the command-line interface for devops.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/97gamjak/devops/internal/cli/commands"
	"github.com/97gamjak/devops/internal/cli/config"
	"github.com/97gamjak/devops/internal/logging"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute. The violation exit code and the
// runtime failure code are deliberately the same value: both mean a
// human must act, and the rendered text disambiguates the cause.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitConfigError = 2
)

// Version information (set at build time via -ldflags).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	rootCmd := &cobra.Command{
		Use:   "devops",
		Short: "Source hygiene checks and release versioning for C/C++ projects",
		Long: `devops enforces source hygiene rules (license headers, header
guards, keyword order) across C/C++ trees and manages release
versioning via git tags.

Configuration lives in devops.toml or .devops.toml in the working
directory or an ancestor; run "devops generate-toml-template" to
create one with documented defaults.

Exit codes: 0 on success, 1 when violations are found or a command
fails, 2 on configuration errors.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Help and completion do not need configuration.
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			loggers, err := logging.New(cmd.ErrOrStderr(), cfg.LevelNames())
			if err != nil {
				return &config.Error{Err: err}
			}
			ctx := config.WithLoggers(cmd.Context(), loggers.Global, loggers.Utils, loggers.Cpp)
			cmd.SetContext(ctx)

			for _, w := range cfg.Warnings {
				loggers.Config.Warn(w)
			}
			if cfg.Verbose {
				if used := config.GetConfigFileUsed(); used != "" {
					loggers.Config.Debug("using config file", "path", used)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: devops.toml or .devops.toml upward from the working directory)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format (auto|text|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output, forces DEBUG logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewCppChecksCommand())
	rootCmd.AddCommand(commands.NewAddLicenseHeaderCommand())
	rootCmd.AddCommand(commands.NewAddLicenseHeadersCommand())
	rootCmd.AddCommand(commands.NewFilterBuggyCppFilesCommand())
	rootCmd.AddCommand(commands.NewGetLatestTagCommand())
	rootCmd.AddCommand(commands.NewIncreaseLatestTagCommand())
	rootCmd.AddCommand(commands.NewUpdateChangelogCommand())
	rootCmd.AddCommand(commands.NewGenerateTomlTemplateCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))

	return rootCmd
}

// Execute runs the root command and maps the outcome onto an exit
// code.
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitCode(err)
}

// exitCode maps a command error onto the process exit code.
// Configuration errors get their own code; everything else,
// violations included, is a plain failure.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}
	return ExitFailure
}
