package commands

import (
	"fmt"

	"github.com/97gamjak/devops/internal/cli/config"
	"github.com/97gamjak/devops/pkg/check"
	"github.com/spf13/cobra"
)

// FixOptions holds options for the header fixing commands.
type FixOptions struct {
	DryRun bool
}

// NewAddLicenseHeaderCommand creates the add-license-header command.
func NewAddLicenseHeaderCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:     "add-license-header FILE",
		Aliases: []string{"add_license_header"},
		Short:   "Insert the configured license header into one file",
		Long: `Prepend the configured license header to the given file unless it
already starts with it. The write is atomic and running the command
twice leaves the file unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, "")

			resolver, err := newResolver(cmdCtx.Cfg)
			if err != nil {
				return err
			}
			targets, err := resolver.TargetsFromPaths(args)
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				return fmt.Errorf("%s is not a recognized C/C++ file", args[0])
			}
			return applyFixer(cmdCtx, targets, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would change without writing")
	return cmd
}

// NewAddLicenseHeadersCommand creates the add-license-headers
// command, the batch variant over whole directories.
func NewAddLicenseHeadersCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:     "add-license-headers [dirs...]",
		Aliases: []string{"add_license_headers"},
		Short:   "Insert the configured license header into every file that lacks it",
		Long: `Resolve every C/C++ file below the given directories (default: the
working directory) and prepend the configured license header to each
file that does not already start with it. A file that cannot be
rewritten is reported and the batch continues.`,
		Example: `  # Fix the whole tree
  devops add-license-headers

  # Preview what would change
  devops add-license-headers include src --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, "")

			resolver, err := newResolver(cmdCtx.Cfg)
			if err != nil {
				return err
			}
			targets, err := resolver.Resolve(args...)
			if err != nil {
				return err
			}
			return applyFixer(cmdCtx, targets, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would change without writing")
	return cmd
}

// applyFixer runs the header fixer over the targets and renders the
// per-file results. Any failed mutation makes the command fail after
// the whole batch ran.
func applyFixer(cmdCtx *CommandContext, targets []check.Target, opts *FixOptions) error {
	cfg := cmdCtx.Cfg

	header, err := cfg.LicenseHeader()
	if err != nil {
		return err
	}
	if header == "" {
		return &config.Error{Err: fmt.Errorf("no license header configured, set cpp.license_header or cpp.license_header_file")}
	}
	header = check.ExpandHeader(header, cfg.License.Owner, cfg.License.Year)

	codec, err := newCodec(cfg)
	if err != nil {
		return err
	}

	fixer := &check.Fixer{
		Header: header,
		Codec:  codec,
		DryRun: opts.DryRun,
		Logger: cmdCtx.Logger,
	}
	mutations := fixer.Apply(targets)

	failed := renderMutations(cmdCtx, mutations, opts.DryRun)
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be fixed", failed, len(mutations))
	}
	return nil
}

// mutationEnvelope is the JSON shape of a fix run.
type mutationEnvelope struct {
	DryRun    bool            `json:"dry_run"`
	Modified  int             `json:"modified"`
	Unchanged int             `json:"unchanged"`
	Failed    int             `json:"failed"`
	Results   []mutationEntry `json:"results"`
}

type mutationEntry struct {
	File  string `json:"file"`
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

// renderMutations writes the fix results and returns the number of
// failures.
func renderMutations(cmdCtx *CommandContext, mutations []check.Mutation, dryRun bool) int {
	r := cmdCtx.Renderer
	styles := r.Styles()

	var modified, unchanged, failed int
	for _, m := range mutations {
		switch m.State {
		case check.MutationModified:
			modified++
		case check.MutationUnchanged:
			unchanged++
		case check.MutationFailed:
			failed++
		}
	}

	if r.JSONEnabled() {
		env := mutationEnvelope{
			DryRun:    dryRun,
			Modified:  modified,
			Unchanged: unchanged,
			Failed:    failed,
			Results:   []mutationEntry{},
		}
		for _, m := range mutations {
			entry := mutationEntry{File: m.Path, State: m.State.String()}
			if m.Err != nil {
				entry.Error = m.Err.Error()
			}
			env.Results = append(env.Results, entry)
		}
		_ = r.JSON(env)
		return failed
	}

	for _, m := range mutations {
		switch m.State {
		case check.MutationModified:
			r.StatusLine(m.Path, styles.Success.Render("modified"), "")
		case check.MutationFailed:
			r.StatusLine(m.Path, styles.Error.Render("failed"), m.Err.Error())
		default:
			if cmdCtx.Cfg.Verbose {
				r.StatusLine(m.Path, styles.Muted.Render("unchanged"), "")
			}
		}
	}

	suffix := ""
	if dryRun {
		suffix = " (dry run)"
	}
	r.Printf("%d modified, %d unchanged, %d failed%s\n", modified, unchanged, failed, suffix)
	return failed
}
