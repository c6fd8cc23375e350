package commands

import (
	"time"

	"github.com/97gamjak/devops/pkg/changelog"
	"github.com/spf13/cobra"
)

// NewUpdateChangelogCommand creates the update-changelog command.
func NewUpdateChangelogCommand() *cobra.Command {
	var path, repoURL string

	cmd := &cobra.Command{
		Use:     "update-changelog VERSION",
		Aliases: []string{"update_changelog"},
		Short:   "Insert a release entry below the Next Release heading",
		Long: `Insert a dated release entry for VERSION right below the
"## Next Release" heading of the changelog and move the insertion
marker in front of it. The file must contain the heading.`,
		Example: `  devops update-changelog v1.2.3
  devops update-changelog v1.2.3 --repo https://github.com/97gamjak/devops`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, "")

			if path == "" {
				path = cmdCtx.Cfg.File.Changelog
			}
			version := args[0]

			if err := changelog.Update(path, version, repoURL, time.Now()); err != nil {
				return err
			}
			cmdCtx.GitLog.Info("changelog updated", "path", path, "version", version)
			cmdCtx.Renderer.Success("added " + version + " to " + path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "changelog", "", "Changelog path (default: file.changelog)")
	cmd.Flags().StringVar(&repoURL, "repo", changelog.DefaultRepoURL, "Repository URL used in the release link")

	return cmd
}
