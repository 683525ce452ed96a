package validator

import (
	"slices"
	"strings"
	"time"
)

// dateLayout is YYMMDD. Two-digit years 69-99 map to 19xx, 00-68 to 20xx.
const dateLayout = "060102"

// Parent describes the folder containing the entity being checked.
type Parent struct {
	// Code is the parent's parsed code. Empty when Valid is false.
	Code string
	// Valid is false when the parent name failed the shape check.
	Valid bool
}

// CheckFolder runs the folder rules on a shape-valid name. parent is nil for
// the root of a traversal, which skips the parent comparison and the
// trailing-letter rule.
func CheckFolder(raw string, name FolderName, parent *Parent, opts Options) []Code {
	var codes []Code
	if !strings.HasPrefix(raw, "_") {
		codes = append(codes, FolderMissingUnderscore)
	}
	if len(raw) > 1 && raw[1] == '_' {
		codes = append(codes, FolderDoubleUnderscore)
	}
	if !strings.HasPrefix(name.Code, "F") {
		codes = append(codes, FolderCodePrefix)
	}
	if parent != nil {
		codes = append(codes, compareToParent(name.Code, *parent)...)
	}
	if opts.hasForbidden(name.FreeText) {
		codes = append(codes, FolderInvalidCharacters)
	}
	return codes
}

// compareToParent expects code to be the parent code plus one lowercase
// letter.
func compareToParent(code string, parent Parent) []Code {
	if !parent.Valid {
		return []Code{FolderParentInvalid}
	}
	if len(code) != len(parent.Code)+1 || !strings.HasPrefix(code, parent.Code) {
		return []Code{FolderCodeMismatch}
	}
	if !isLowerLetter(code[len(code)-1]) {
		return []Code{FolderTrailingLetter}
	}
	return nil
}

// CheckFile runs the file rules on a shape-valid stem. folder is the
// containing folder; the file code must equal its code exactly.
func CheckFile(raw string, stem FileStem, folder Parent, now time.Time, opts Options) []Code {
	var codes []Code
	switch {
	case !folder.Valid:
		codes = append(codes, FileParentInvalid)
	case stem.Code != folder.Code:
		codes = append(codes, FileCodeMismatch)
	}
	if strings.HasPrefix(raw, "_") {
		codes = append(codes, FileLeadingUnderscore)
	}
	date, err := time.ParseInLocation(dateLayout, stem.Date, now.Location())
	switch {
	case err != nil:
		codes = append(codes, FileInvalidDate)
	case date.After(now):
		codes = append(codes, FileFutureDate)
	}
	if opts.hasForbidden(stem.FreeText) {
		codes = append(codes, FileInvalidCharacters)
	}
	if len([]rune(stem.UserCode)) != opts.UserCodeLength {
		codes = append(codes, FileUserCodeLength)
	}
	if strings.ToUpper(stem.UserCode) != stem.UserCode {
		codes = append(codes, FileUserCodeCase)
	}
	return codes
}

// CheckSiblings verifies that the trailing letters of a folder's direct
// subfolders form a run starting at 'a' without gaps. Each name is looked
// up independently; any subfolder whose letter cannot be derived makes the
// whole check unverifiable. Repeated letters are tolerated.
func CheckSiblings(names []string) []Code {
	if len(names) == 0 {
		return nil
	}
	letters := make([]byte, 0, len(names))
	for _, n := range names {
		l, ok := trailingLetter(n)
		if !ok {
			return []Code{SiblingLettersUnverifiable}
		}
		letters = append(letters, l)
	}
	slices.Sort(letters)
	letters = slices.Compact(letters)
	for i, l := range letters {
		if l != 'a'+byte(i) {
			return []Code{SiblingLettersNotContiguous}
		}
	}
	return nil
}

func trailingLetter(name string) (byte, bool) {
	if !MatchesFolderShape(name) {
		return 0, false
	}
	parsed, err := ParseFolderName(name)
	if err != nil {
		return 0, false
	}
	last := parsed.Code[len(parsed.Code)-1]
	if !isLowerLetter(last) {
		return 0, false
	}
	return last, true
}

func isLowerLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
