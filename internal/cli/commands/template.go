package commands

import (
	"fmt"
	"os"

	"github.com/97gamjak/devops/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewGenerateTomlTemplateCommand creates the generate-toml-template
// command.
func NewGenerateTomlTemplateCommand() *cobra.Command {
	var outputPath string
	var force bool

	cmd := &cobra.Command{
		Use:     "generate-toml-template",
		Aliases: []string{"generate_toml_template"},
		Short:   "Write a devops.toml template with documented defaults",
		Long: `Write a devops.toml with every recognized key present but
commented out, showing the built-in defaults. An existing file is
never overwritten without --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd, "")

			if _, err := os.Stat(outputPath); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", outputPath)
			}
			if err := os.WriteFile(outputPath, []byte(config.Template()), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outputPath, err)
			}
			cmdCtx.Renderer.Success("wrote " + outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "devops.toml", "Where to write the template")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
