package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/mscheltienne/it-documentary-system-validator/internal/config"
	"github.com/mscheltienne/it-documentary-system-validator/internal/logging"
	"github.com/mscheltienne/it-documentary-system-validator/report"
	"github.com/mscheltienne/it-documentary-system-validator/validator"
)

// ErrPrimaryViolations is returned by check with --fail-on-violations when
// the report holds at least one primary violation.
var ErrPrimaryViolations = errors.New("primary violations found")

// NewCheckCmd creates and returns the check subcommand for the docval CLI.
func NewCheckCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check ROOT",
		Short: "Validate a documentary tree",
		Long: `Validate the folder and file names below ROOT.

ROOT is itself validated as a root folder (_F<n>_<free text>). Folders named
after the archive marker are skipped with everything inside them.

Settings are read, in increasing precedence, from built-in defaults, the YAML
file given by --config (or .docval.yaml in the working directory), DOCVAL_*
environment variables and the flags below.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], configPath)
		},
	}

	defaults := config.Default()
	f := cmd.Flags()
	f.IntP("jobs", "j", defaults.Jobs, "Number of workers validating root subfolders in parallel")
	f.StringP("output", "o", "", "Write the report to this file instead of stdout")
	f.StringArrayP("ignore", "i", nil, "Glob of report paths to drop, relative to ROOT (repeatable)")
	f.String("format", defaults.Format, "Report format: text, json or yaml")
	f.String("color", defaults.Color, "Color the text report: auto, always or never")
	f.String("archive-marker", defaults.ArchiveMarker, "Name of the folders excluded from validation")
	f.Bool("archive-case-insensitive", false, "Match the archive marker regardless of case")
	f.Int("usercode-length", defaults.UserCodeLength, "Required length of the user code in file names")
	f.String("forbidden", defaults.Forbidden, "Characters not allowed in free text")
	f.Bool("check-siblings", false, "Require subfolder letters to run a, b, c... without gaps")
	f.Bool("fail-on-violations", false, "Exit with an error when primary violations are found")
	f.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	f.String("log-format", defaults.LogFormat, "Log format: console or json")
	f.StringVar(&configPath, "config", "", "Path to a YAML configuration file")

	return cmd
}

func runCheck(cmd *cobra.Command, root, configPath string) error {
	cfg, err := config.Load(configPath, changedFlags(cmd.Flags()))
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	res, err := validator.Validate(cmd.Context(), root, cfg.Options(log))
	if err != nil {
		return err
	}

	rep, err := report.New(res, root, cfg.Ignore)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	mode := report.ColorMode(cfg.Color)
	render := func(w io.Writer) error {
		return rep.Render(w, format, report.UseColor(mode, w))
	}

	if cfg.Output != "" {
		if err := report.WriteFile(cfg.Output, render); err != nil {
			return err
		}
		log.Info("report written", zap.String("path", cfg.Output))
	} else if err := render(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.FailOnViolations && len(rep.Primary) > 0 {
		return fmt.Errorf("%w: %d paths", ErrPrimaryViolations, len(rep.Primary))
	}
	return nil
}

// changedFlags returns the flags set on the command line, keyed like the
// configuration file.
func changedFlags(flags *pflag.FlagSet) map[string]any {
	out := map[string]any{}
	flags.Visit(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		var val any
		switch f.Value.Type() {
		case "int":
			val, _ = flags.GetInt(f.Name)
		case "bool":
			val, _ = flags.GetBool(f.Name)
		case "stringArray":
			val, _ = flags.GetStringArray(f.Name)
		default:
			val = f.Value.String()
		}
		out[key] = val
	})
	return out
}
