package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mscheltienne/it-documentary-system-validator/validator"
)

// NewRulesCmd creates and returns the rules subcommand for the docval CLI.
func NewRulesCmd() *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalogue",
		Long: `List every rule code with its scope and description.

Codes below 100 apply to files, codes from 100 to 199 to folders and 2xx to
the subfolders of a folder. Codes from 300 are raised when a name cannot be
checked at all, because it is unparseable or its parent is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd, validator.Scope(scope))
		},
	}

	cmd.Flags().StringVarP(&scope, "scope", "s", "", "Only list rules of this scope: file or folder")

	return cmd
}

func runRules(cmd *cobra.Command, scope validator.Scope) error {
	switch scope {
	case "", validator.ScopeFile, validator.ScopeFolder:
	default:
		return fmt.Errorf("invalid scope %q (use 'file' or 'folder')", scope)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tSCOPE\tDESCRIPTION")
	for _, r := range validator.Rules() {
		if scope != "" && r.Scope != scope {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Code, r.Scope, r.Description)
	}
	return tw.Flush()
}
