package commands

import (
	"sort"

	"github.com/spf13/cobra"
)

// NewFilterBuggyCppFilesCommand creates the filter-buggy-cpp-files
// command. It runs the same engine as cpp-checks but emits only the
// violating paths, one per line, for piping into other tools. It
// always exits 0: it is a filter, not a gate.
func NewFilterBuggyCppFilesCommand() *cobra.Command {
	opts := &CppChecksOptions{}
	cmd := &cobra.Command{
		Use:     "filter-buggy-cpp-files [dirs...]",
		Aliases: []string{"filter_buggy_cpp_files"},
		Short:   "Print the paths of files violating any hygiene rule",
		Example: `  # Open every violating file in the editor
  devops filter-buggy-cpp-files | xargs $EDITOR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, "")
			if cmdCtx.Cfg.Cpp.CheckOnlyStagedFiles {
				opts.Staged = true
			}

			report, err := runChecks(cmd.Context(), cmdCtx, opts, args)
			if err != nil {
				return err
			}

			seen := make(map[string]bool)
			var paths []string
			for _, o := range report.Violations() {
				if !seen[o.Path] {
					seen[o.Path] = true
					paths = append(paths, o.Path)
				}
			}
			sort.Strings(paths)

			if cmdCtx.Renderer.JSONEnabled() {
				if paths == nil {
					paths = []string{}
				}
				return cmdCtx.Renderer.JSON(paths)
			}
			for _, p := range paths {
				cmdCtx.Renderer.Println(p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Staged, "staged", false, "Check only files staged in the git index")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")

	return cmd
}
