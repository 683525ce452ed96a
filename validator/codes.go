package validator

import (
	"fmt"
	"slices"
)

// Code is a stable numeric rule identifier. The numbering is shared by the
// rule engine, the classifier and every report format.
type Code int

// File violations.
const (
	FileCodeMismatch      Code = 1
	FileLeadingUnderscore Code = 3
	FileInvalidCharacters Code = 21
	FileInvalidDate       Code = 31
	FileFutureDate        Code = 32
	FileUserCodeLength    Code = 41
	FileUserCodeCase      Code = 42
)

// Folder violations.
const (
	FolderCodeMismatch      Code = 101
	FolderTrailingLetter    Code = 102
	FolderMissingUnderscore Code = 103
	FolderDoubleUnderscore  Code = 104
	FolderCodePrefix        Code = 105
	FolderInvalidCharacters Code = 111
)

// Subfolder violations, attached to the containing folder.
const (
	SiblingLettersNotContiguous Code = 201
)

// Shape and context violations.
const (
	FileUnparseable            Code = 301
	FileParentInvalid          Code = 302
	FolderUnparseable          Code = 311
	FolderParentInvalid        Code = 312
	SiblingLettersUnverifiable Code = 321
)

// Scope tells which kind of entity a rule applies to.
type Scope string

const (
	ScopeFile   Scope = "file"
	ScopeFolder Scope = "folder"
)

// Rule describes one entry of the catalogue.
type Rule struct {
	Code        Code
	Scope       Scope
	Description string
}

var catalogue = []Rule{
	{FileCodeMismatch, ScopeFile, "File code does not match folder code."},
	{FileLeadingUnderscore, ScopeFile, "File name must not start with a leading underscore."},
	{FileInvalidCharacters, ScopeFile, "File name free text contains invalid characters."},
	{FileInvalidDate, ScopeFile, "File date format is invalid, expected 'YYMMDD'."},
	{FileFutureDate, ScopeFile, "File date is in the future."},
	{FileUserCodeLength, ScopeFile, "File user code length is invalid."},
	{FileUserCodeCase, ScopeFile, "File user code must be uppercase."},
	{FolderCodeMismatch, ScopeFolder, "Folder code does not match parent folder code."},
	{FolderTrailingLetter, ScopeFolder, "Folder code must end with a lowercase letter, except for root folders."},
	{FolderMissingUnderscore, ScopeFolder, "Folder name must start with a leading underscore."},
	{FolderDoubleUnderscore, ScopeFolder, "Folder name has multiple leading underscores."},
	{FolderCodePrefix, ScopeFolder, "Folder code must start with 'F'."},
	{FolderInvalidCharacters, ScopeFolder, "Folder name free text contains invalid characters."},
	{SiblingLettersNotContiguous, ScopeFolder, "Subfolder code letters are not consecutive lowercase letters starting at 'a'."},
	{FileUnparseable, ScopeFile, "File name could not be parsed."},
	{FileParentInvalid, ScopeFile, "File name could not be validated because the parent folder is invalid."},
	{FolderUnparseable, ScopeFolder, "Folder name could not be parsed."},
	{FolderParentInvalid, ScopeFolder, "Folder name could not be validated because the parent folder is invalid."},
	{SiblingLettersUnverifiable, ScopeFolder, "Subfolder code letters could not be validated because at least one subfolder is invalid."},
}

// Rules returns the full catalogue ordered by code.
func Rules() []Rule {
	return slices.Clone(catalogue)
}

// Lookup returns the catalogue entry for c.
func Lookup(c Code) (Rule, bool) {
	for _, r := range catalogue {
		if r.Code == c {
			return r, true
		}
	}
	return Rule{}, false
}

// Description returns the human-readable description of c.
func (c Code) Description() string {
	if r, ok := Lookup(c); ok {
		return r.Description
	}
	return fmt.Sprintf("Unknown rule %d.", int(c))
}

func (c Code) String() string {
	return fmt.Sprintf("%d", int(c))
}
