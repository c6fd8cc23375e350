package commands

import (
	"strings"

	"github.com/97gamjak/devops/pkg/check"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewRulesCommand creates the rules command, which lists the
// registered hygiene rules.
func NewRulesCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the available hygiene rules",
		Example: `  # List every rule
  devops rules

  # List the guard rules as JSON
  devops rules --group guard --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd, "")
			r := cmdCtx.Renderer

			defs := check.GetAll()
			if group != "" {
				defs = check.GetByGroup(group)
			}

			if r.JSONEnabled() {
				type ruleInfo struct {
					ID          string   `json:"id"`
					Name        string   `json:"name"`
					Group       string   `json:"group"`
					Kinds       string   `json:"kinds"`
					ConfigKeys  []string `json:"config_keys,omitempty"`
					Description string   `json:"description"`
				}
				infos := make([]ruleInfo, 0, len(defs))
				for _, def := range defs {
					infos = append(infos, ruleInfo{
						ID:          def.ID,
						Name:        def.Name,
						Group:       def.Group,
						Kinds:       kindsLabel(def),
						ConfigKeys:  def.ConfigKeys,
						Description: def.Description,
					})
				}
				return r.JSON(infos)
			}

			t := table.NewWriter()
			t.SetOutputMirror(r.Writer())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Group", "Applies to", "Description"})
			for _, def := range defs {
				t.AppendRow(table.Row{def.ID, def.Name, def.Group, kindsLabel(def), def.Description})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Filter by group")

	return cmd
}

// kindsLabel renders the applicability of a rule for display.
func kindsLabel(def check.RuleDef) string {
	if len(def.Kinds) == 0 {
		return "all files"
	}
	names := make([]string, 0, len(def.Kinds))
	for _, k := range def.Kinds {
		names = append(names, k.String()+"s")
	}
	return strings.Join(names, ", ")
}
