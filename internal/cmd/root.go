package cmd

import (
	"github.com/mscheltienne/it-documentary-system-validator/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the docval CLI.
// It sets up all subcommands and command groups.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docval",
		Short: "docval - A validator for coded documentary folder and file names",
		Long: `docval validates a documentary tree against a coded naming scheme.

Folders are named _<code>_<free text> and files <code>_<YYMMDD>_<free text>_<user>.
Codes extend the code of the parent folder by one lowercase letter per level,
and every file carries the code of the folder that holds it. Violations are
reported as primary (fix these) or secondary (caused by a parent violation).

Use subcommands to perform different operations:
  - check: Validate a tree and report violations
  - rules: List the rule catalogue
  - count: Count the folders and files a check would visit
  - seed: Generate a compliant synthetic tree`,
		Version: version.GetFullVersion(),
	}

	groupValidation := "validation"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupValidation,
		Title: "Validation",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	checkCmd := NewCheckCmd()
	rulesCmd := NewRulesCmd()
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()

	checkCmd.GroupID = groupValidation
	rulesCmd.GroupID = groupValidation
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
