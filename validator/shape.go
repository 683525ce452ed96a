package validator

import "regexp"

// The shape patterns are coarser than the naming grammar: they only reject
// names the parser cannot split, leaving prefix, underscore and letter
// problems to the structured rules.
var (
	reFolderShape = regexp.MustCompile(`^_*[A-Za-z][0-9]+[A-Za-z]*_.+$`)
	reFileShape   = regexp.MustCompile(`^_*[A-Za-z][0-9]+[A-Za-z]*_[0-9]{6}_.+_[^_]+$`)
)

// MatchesFolderShape reports whether a folder name can be parsed.
func MatchesFolderShape(name string) bool {
	return reFolderShape.MatchString(name)
}

// MatchesFileShape reports whether a file stem can be parsed.
func MatchesFileShape(stem string) bool {
	return reFileShape.MatchString(stem)
}
