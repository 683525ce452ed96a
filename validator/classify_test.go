package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		raw           []Code
		parentRaw     []Code
		wantPrimary   []Code
		wantSecondary []Code
	}{
		{
			name:        "clean parent keeps everything primary",
			raw:         []Code{FolderCodeMismatch, FolderInvalidCharacters},
			wantPrimary: []Code{FolderCodeMismatch, FolderInvalidCharacters},
		},
		{
			name:          "broken parent demotes mismatch",
			raw:           []Code{FolderCodeMismatch, FolderInvalidCharacters},
			parentRaw:     []Code{FolderCodePrefix},
			wantPrimary:   []Code{FolderInvalidCharacters},
			wantSecondary: []Code{FolderCodeMismatch},
		},
		{
			name:          "unparseable parent demotes context codes",
			raw:           []Code{FileParentInvalid, FileInvalidDate},
			parentRaw:     []Code{FolderUnparseable},
			wantPrimary:   []Code{FileInvalidDate},
			wantSecondary: []Code{FileParentInvalid},
		},
		{
			name:          "file mismatch under broken folder",
			raw:           []Code{FileCodeMismatch},
			parentRaw:     []Code{FolderCodeMismatch},
			wantSecondary: []Code{FileCodeMismatch},
		},
		{
			name:        "intrinsic codes stay primary",
			raw:         []Code{FolderMissingUnderscore, FolderDoubleUnderscore, FolderCodePrefix, FolderUnparseable},
			parentRaw:   []Code{FolderCodeMismatch},
			wantPrimary: []Code{FolderMissingUnderscore, FolderDoubleUnderscore, FolderCodePrefix, FolderUnparseable},
		},
		{
			name:          "unverifiable siblings are always secondary",
			raw:           []Code{SiblingLettersUnverifiable},
			wantSecondary: []Code{SiblingLettersUnverifiable},
		},
		{
			name: "no violations",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, secondary := Classify(tt.raw, tt.parentRaw)
			assert.Equal(t, tt.wantPrimary, primary)
			assert.Equal(t, tt.wantSecondary, secondary)
		})
	}
}

func TestRulesCatalogue(t *testing.T) {
	rules := Rules()
	seen := map[Code]bool{}
	for i, r := range rules {
		assert.False(t, seen[r.Code], "duplicate code %d", r.Code)
		seen[r.Code] = true
		assert.NotEmpty(t, r.Description)
		if i > 0 {
			assert.Less(t, rules[i-1].Code, r.Code, "catalogue must be ordered")
		}
	}
	assert.Equal(t, "File date is in the future.", FileFutureDate.Description())
	assert.Contains(t, Code(999).Description(), "Unknown")
}
