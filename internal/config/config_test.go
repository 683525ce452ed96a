package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mscheltienne/it-documentary-system-validator/validator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docval.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
jobs: 2
format: json
archive_marker: __archive
ignore:
  - "**/*.tmp"
check_siblings: true
`)

	tests := []struct {
		name      string
		env       map[string]string
		overrides map[string]any
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name: "file over defaults",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2, cfg.Jobs)
				assert.Equal(t, "json", cfg.Format)
				assert.Equal(t, "__archive", cfg.ArchiveMarker)
				assert.Equal(t, []string{"**/*.tmp"}, cfg.Ignore)
				assert.True(t, cfg.CheckSiblings)
				assert.Equal(t, validator.DefaultUserCodeLength, cfg.UserCodeLength)
			},
		},
		{
			name: "env over file",
			env:  map[string]string{"DOCVAL_JOBS": "6", "DOCVAL_USERCODE_LENGTH": "4"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 6, cfg.Jobs)
				assert.Equal(t, 4, cfg.UserCodeLength)
				assert.Equal(t, "json", cfg.Format)
			},
		},
		{
			name:      "flags over env",
			env:       map[string]string{"DOCVAL_JOBS": "6"},
			overrides: map[string]any{"jobs": 3, "format": "yaml", "ignore": []string{"tmp/**"}},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Jobs)
				assert.Equal(t, "yaml", cfg.Format)
				assert.Equal(t, []string{"tmp/**"}, cfg.Ignore)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(path, tt.overrides)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "jobs: [1, 2"), nil)
		assert.Error(t, err)
	})

	t.Run("invalid workers", func(t *testing.T) {
		_, err := Load(writeConfig(t, "jobs: 0"), nil)
		assert.ErrorIs(t, err, validator.ErrInvalidWorkers)
	})

	t.Run("empty marker", func(t *testing.T) {
		_, err := Load(writeConfig(t, `archive_marker: ""`), nil)
		assert.ErrorIs(t, err, validator.ErrEmptyArchiveMarker)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Load(writeConfig(t, "format: xml"), nil)
		assert.ErrorContains(t, err, "unknown report format")
	})

	t.Run("unknown color", func(t *testing.T) {
		_, err := Load(writeConfig(t, "color: sometimes"), nil)
		assert.ErrorContains(t, err, "invalid color mode")
	})
}

func TestConfigOptions(t *testing.T) {
	cfg := Default()
	cfg.Jobs = 4
	cfg.ArchiveMarker = "_ARCHIVE"
	cfg.ArchiveCaseInsensitive = true
	cfg.UserCodeLength = 2
	cfg.Forbidden = "#"
	cfg.CheckSiblings = true

	opts := cfg.Options(nil)
	assert.Equal(t, 4, opts.Workers)
	assert.Equal(t, "_ARCHIVE", opts.ArchiveMarker)
	assert.True(t, opts.ArchiveCaseInsensitive)
	assert.Equal(t, 2, opts.UserCodeLength)
	assert.Equal(t, "#", opts.ForbiddenCharacters)
	assert.True(t, opts.CheckSiblings)
	assert.NoError(t, opts.Validate())
}
