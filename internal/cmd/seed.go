package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mscheltienne/it-documentary-system-validator/treegen"
)

// NewSeedCmd creates and returns the seed subcommand for the docval CLI.
// It generates a synthetic tree that passes check without violations.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		verbose    bool
	)
	opts := treegen.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a compliant synthetic documentary tree",
		Long: `Generate a synthetic documentary tree for testing docval.

Creates root folders _F1_..._Fn_ with nested subfolders lettered a, b, c...
and files carrying the code of their folder, a date within the last two
years, UUID-based free text and an uppercase user code. Archive folders are
filled with names that break every rule; check skips them.

The same --seed always produces the same tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, outputPath, opts, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVar(&opts.Roots, "roots", opts.Roots, "Number of root folders")
	cmd.Flags().IntVar(&opts.Depth, "depth", opts.Depth, "Maximum folder depth below a root")
	cmd.Flags().IntVar(&opts.MaxSubfolders, "max-subfolders", opts.MaxSubfolders, "Maximum subfolders per folder")
	cmd.Flags().IntVar(&opts.MaxFiles, "max-files", opts.MaxFiles, "Maximum files per folder")
	cmd.Flags().IntVar(&opts.UserCode, "usercode-length", opts.UserCode, "Length of generated user codes")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Random seed (0 picks one)")
	cmd.Flags().BoolVar(&opts.Archive, "archive", opts.Archive, "Add archive folders with non-compliant content")
	cmd.Flags().StringVar(&opts.ArchiveMarker, "archive-marker", opts.ArchiveMarker, "Name of the archive folders")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List the generated roots")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(cmd *cobra.Command, outputPath string, opts treegen.Options, verbose bool) error {
	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprintf(out, "Generating %d roots in %s\n", opts.Roots, outputPath)
	}

	stats, err := treegen.Generate(outputPath, opts)
	if err != nil {
		return fmt.Errorf("failed to generate tree: %w", err)
	}

	if verbose {
		for _, r := range stats.Roots {
			fmt.Fprintf(out, "  %s\n", r)
		}
	}
	fmt.Fprintf(out, "Created %d folders and %d files in %s\n", stats.Folders, stats.Files, outputPath)
	return nil
}
