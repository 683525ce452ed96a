// Package cmd provides the command-line interface implementation for docval.
//
// Each subcommand lives in its own file with a NewXxxCmd constructor that
// returns a *cobra.Command; NewRootCmd groups them:
//   - check: validation of a tree, configured through internal/config
//   - rules: the rule catalogue
//   - count: folder and file counts honoring the archive marker
//   - seed: synthetic tree generation with treegen
//
// Commands write their output to cmd.OutOrStdout so tests can capture it.
package cmd
