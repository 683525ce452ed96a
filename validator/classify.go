package validator

// demotable holds the codes whose only possible cause is a malformed parent.
var demotable = map[Code]bool{
	FileCodeMismatch:    true,
	FileParentInvalid:   true,
	FolderCodeMismatch:  true,
	FolderParentInvalid: true,
}

// contextual codes describe the state of other entities and are never
// reported as primary.
var contextual = map[Code]bool{
	SiblingLettersUnverifiable: true,
}

// Classify splits an entity's raw violations into primary and secondary
// using the raw violations of its parent. With a clean parent everything
// except contextual codes is primary. Relative order is preserved.
func Classify(raw, parentRaw []Code) (primary, secondary []Code) {
	parentBroken := len(parentRaw) > 0
	for _, c := range raw {
		if contextual[c] || (parentBroken && demotable[c]) {
			secondary = append(secondary, c)
			continue
		}
		primary = append(primary, c)
	}
	return primary, secondary
}
