package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"no commit", Info{Version: "v1.2.0", Commit: "unknown", Date: "unknown"}, "v1.2.0"},
		{"short commit", Info{Version: "v1.2.0", Commit: "abc", Date: "2025-01-01"}, "v1.2.0"},
		{"commit only", Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "unknown"}, "v1.2.0 (0123456)"},
		{"commit and date", Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "2025-01-01"}, "v1.2.0 (0123456, built 2025-01-01)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestInjectedVersionWins(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v9.9.9"
	assert.Equal(t, "v9.9.9", GetVersion())
	assert.Equal(t, "docval", GetInfo().Program)
}
