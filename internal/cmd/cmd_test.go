package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mscheltienne/it-documentary-system-validator/report"
	"github.com/mscheltienne/it-documentary-system-validator/treegen"
	"github.com/mscheltienne/it-documentary-system-validator/validator"
)

// execute runs the root command with args from an empty working directory
// so no stray .docval.yaml is picked up.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// brokenTree has one folder code mismatch, one unparseable file and a file
// whose violation is demoted by its parent folder.
func brokenTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "_F1_lab")
	for _, dir := range []string{"_F2a_sub", "_F1a_ok", "__old"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	for _, f := range []string{
		"notes.txt",
		"F1_230101_report_ABC.txt",
		"_F2a_sub/F1a_230101_x_ABC.txt",
		"_F1a_ok/F1a_230101_x_ABC.txt",
		"__old/anything goes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("101"), 0o644))
	}
	return root
}

func TestCheckCmd_Compliant(t *testing.T) {
	dir := t.TempDir()
	opts := treegen.DefaultOptions()
	opts.Roots = 1
	opts.Seed = 7
	stats, err := treegen.Generate(dir, opts)
	require.NoError(t, err)

	out, err := execute(t, "check", stats.Roots[0], "--color", "never", "--fail-on-violations", "-j", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Root: "+stats.Roots[0])
	assert.Contains(t, out, "Summary: 0 primary, 0 secondary")
}

func TestCheckCmd_Text(t *testing.T) {
	root := brokenTree(t)

	out, err := execute(t, "check", root, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "  _F2a_sub\n    101: "+validator.FolderCodeMismatch.Description())
	assert.Contains(t, out, "  notes.txt\n    301: ")
	assert.Contains(t, out, "  _F2a_sub/F1a_230101_x_ABC.txt\n    1: ")
	assert.Contains(t, out, "Summary: 2 primary, 1 secondary")
	assert.NotContains(t, out, "__old")
}

func TestCheckCmd_JSON(t *testing.T) {
	root := brokenTree(t)

	out, err := execute(t, "check", root, "--format", "json", "--ignore", "*.txt")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, validator.Violations{"_F2a_sub": {validator.FolderCodeMismatch}}, rep.Primary)
	assert.Equal(t, validator.Violations{"_F2a_sub/F1a_230101_x_ABC.txt": {validator.FileCodeMismatch}}, rep.Secondary)
}

func TestCheckCmd_OutputFile(t *testing.T) {
	root := brokenTree(t)
	path := filepath.Join(t.TempDir(), "report.yaml")

	out, err := execute(t, "check", root, "--format", "yaml", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "root: "+root)
	assert.Contains(t, string(data), "notes.txt:")
}

func TestCheckCmd_FailOnViolations(t *testing.T) {
	root := brokenTree(t)

	_, err := execute(t, "check", root, "--fail-on-violations")
	assert.ErrorIs(t, err, ErrPrimaryViolations)
}

func TestCheckCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing root", []string{"check", "/does/not/exist"}, validator.ErrRootNotFound},
		{"zero workers", []string{"check", ".", "-j", "0"}, validator.ErrInvalidWorkers},
		{"bad format", []string{"check", ".", "--format", "xml"}, report.ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckCmd_ConfigFile(t *testing.T) {
	root := brokenTree(t)
	cfgPath := filepath.Join(t.TempDir(), "docval.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: json\nignore:\n  - _F2a_sub/**\n"), 0o644))

	out, err := execute(t, "check", root, "--config", cfgPath, "--ignore", "notes.txt")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	// Flags replace the file's ignore list rather than extending it.
	assert.Equal(t, []string{"_F2a_sub"}, rep.Primary.Sorted())
	assert.Equal(t, []string{"_F2a_sub/F1a_230101_x_ABC.txt"}, rep.Secondary.Sorted())
}

func TestChangedFlags(t *testing.T) {
	cmd := NewCheckCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"-j", "3", "--check-siblings", "-i", "a/**", "-i", "b", "--archive-marker", "_ARCHIVE", "--config", "x.yaml",
	}))

	assert.Equal(t, map[string]any{
		"jobs":           3,
		"check_siblings": true,
		"ignore":         []string{"a/**", "b"},
		"archive_marker": "_ARCHIVE",
	}, changedFlags(cmd.Flags()))
}

func TestRulesCmd(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)
	for _, r := range validator.Rules() {
		assert.Contains(t, out, r.Description)
	}

	out, err = execute(t, "rules", "--scope", "file")
	require.NoError(t, err)
	assert.Contains(t, out, validator.FileUnparseable.Description())
	assert.NotContains(t, out, validator.FolderUnparseable.Description())

	_, err = execute(t, "rules", "--scope", "tree")
	assert.Error(t, err)
}

func TestCountCmd(t *testing.T) {
	root := brokenTree(t)

	out, err := execute(t, "count", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Folders: 3\n")
	assert.Contains(t, out, "Files: 4\n")
	assert.Contains(t, out, "Archive folders skipped: 1\n")
}

func TestSeedCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "seeded")

	out, err := execute(t, "seed", "-o", dir, "--roots", "2", "--seed", "42", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Generating 2 roots in "+dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		out, err := execute(t, "check", filepath.Join(dir, e.Name()), "--fail-on-violations")
		require.NoError(t, err, out)
	}

	_, err = execute(t, "seed")
	assert.Error(t, err)
}
