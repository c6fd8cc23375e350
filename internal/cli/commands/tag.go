package commands

import (
	"fmt"

	"github.com/97gamjak/devops/pkg/gitx"
	"github.com/spf13/cobra"
)

// NewGetLatestTagCommand creates the get-latest-tag command.
func NewGetLatestTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get-latest-tag",
		Aliases: []string{"get_latest_tag"},
		Short:   "Print the highest release tag of the repository",
		Long: `Print the highest release tag of the form <prefix>MAJOR.MINOR.PATCH.
Tags that do not parse are skipped. With git.empty_tag_list_allowed a
repository without release tags yields the zero tag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd, "")
			cfg := cmdCtx.Cfg

			client := &gitx.Client{Logger: cmdCtx.GitLog}
			tag, err := client.Latest(cmd.Context(), cfg.Git.TagPrefix, cfg.Git.EmptyTagListAllowed)
			if err != nil {
				return err
			}

			if cmdCtx.Renderer.JSONEnabled() {
				return cmdCtx.Renderer.JSON(map[string]any{
					"tag":   tag.String(),
					"major": tag.Major,
					"minor": tag.Minor,
					"patch": tag.Patch,
				})
			}
			cmdCtx.Renderer.Println(tag.String())
			return nil
		},
	}
}

// NewIncreaseLatestTagCommand creates the increase-latest-tag
// command.
func NewIncreaseLatestTagCommand() *cobra.Command {
	var major, minor, patch bool

	cmd := &cobra.Command{
		Use:     "increase-latest-tag",
		Aliases: []string{"increase_latest_tag"},
		Short:   "Print the latest release tag bumped by one part",
		Long: `Take the highest release tag and print it with exactly one of the
major, minor, or patch parts incremented. Lower parts reset to zero.
The tag is only printed, never created.`,
		Example: `  # v1.2.3 -> v1.3.0
  devops increase-latest-tag --minor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var part gitx.Part
			switch {
			case major && !minor && !patch:
				part = gitx.PartMajor
			case minor && !major && !patch:
				part = gitx.PartMinor
			case patch && !major && !minor:
				part = gitx.PartPatch
			default:
				return fmt.Errorf("exactly one of --major, --minor, --patch is required")
			}

			cmdCtx := NewCommandContext(cmd, "")
			cfg := cmdCtx.Cfg

			client := &gitx.Client{Logger: cmdCtx.GitLog}
			tag, err := client.Latest(cmd.Context(), cfg.Git.TagPrefix, cfg.Git.EmptyTagListAllowed)
			if err != nil {
				return err
			}
			bumped := tag.Bump(part)

			if cmdCtx.Renderer.JSONEnabled() {
				return cmdCtx.Renderer.JSON(map[string]any{
					"previous": tag.String(),
					"tag":      bumped.String(),
					"part":     part.String(),
				})
			}
			cmdCtx.Renderer.Println(bumped.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&major, "major", false, "Increment the major part")
	cmd.Flags().BoolVar(&minor, "minor", false, "Increment the minor part")
	cmd.Flags().BoolVar(&patch, "patch", false, "Increment the patch part")
	cmd.MarkFlagsMutuallyExclusive("major", "minor", "patch")

	return cmd
}
