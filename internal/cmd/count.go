package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mscheltienne/it-documentary-system-validator/validator"
)

// NewCountCmd creates and returns the count subcommand for the docval CLI.
// It counts what a check of the same tree would visit.
func NewCountCmd() *cobra.Command {
	var (
		archiveMarker   string
		caseInsensitive bool
		showProgress    bool
	)

	cmd := &cobra.Command{
		Use:   "count [ROOT]",
		Short: "Count the folders and files a check would visit",
		Long: `Count the folders and files below ROOT that a check would validate.

Archive folders are skipped with their content, exactly as check skips them.
Useful for sizing a tree before choosing the number of workers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			opts := validator.DefaultOptions()
			opts.ArchiveMarker = archiveMarker
			opts.ArchiveCaseInsensitive = caseInsensitive
			return runCount(cmd, root, opts, showProgress)
		},
	}

	cmd.Flags().StringVar(&archiveMarker, "archive-marker", validator.DefaultArchiveMarker, "Name of the folders excluded from validation")
	cmd.Flags().BoolVar(&caseInsensitive, "archive-case-insensitive", false, "Match the archive marker regardless of case")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show progress every 10,000 files")

	return cmd
}

func runCount(cmd *cobra.Command, root string, opts validator.Options, showProgress bool) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	folders, files, skipped := 0, 0, 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && opts.IsArchive(d.Name()) {
				skipped++
				return filepath.SkipDir
			}
			folders++
			return nil
		}
		files++
		if showProgress && files%10000 == 0 {
			fmt.Fprintf(out, "Progress: %d files counted\n", files)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error counting files: %w", err)
	}

	fmt.Fprintf(out, "Folders: %d\n", folders)
	fmt.Fprintf(out, "Files: %d\n", files)
	fmt.Fprintf(out, "Archive folders skipped: %d\n", skipped)
	return nil
}
