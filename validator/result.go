package validator

import (
	"maps"
	"path/filepath"
	"slices"
)

// Violations maps an entity path to its ordered rule codes.
type Violations map[string][]Code

// Result holds the two path-keyed maps produced by one invocation.
type Result struct {
	Primary   Violations `json:"primary" yaml:"primary"`
	Secondary Violations `json:"secondary" yaml:"secondary"`
}

func newResult() Result {
	return Result{Primary: Violations{}, Secondary: Violations{}}
}

// record classifies raw against parentRaw and stores the non-empty halves.
func (r Result) record(path string, raw, parentRaw []Code) {
	if len(raw) == 0 {
		return
	}
	primary, secondary := Classify(raw, parentRaw)
	if len(primary) > 0 {
		r.Primary[path] = primary
	}
	if len(secondary) > 0 {
		r.Secondary[path] = secondary
	}
}

// merge adds other's keys to r. Subtree key sets are disjoint so nothing is
// overwritten.
func (r Result) merge(other Result) {
	maps.Copy(r.Primary, other.Primary)
	maps.Copy(r.Secondary, other.Secondary)
}

// Empty reports whether neither map holds a violation.
func (r Result) Empty() bool {
	return len(r.Primary) == 0 && len(r.Secondary) == 0
}

// Paths returns the keys of both maps, sorted and deduplicated.
func (r Result) Paths() []string {
	paths := slices.Collect(maps.Keys(r.Primary))
	paths = slices.AppendSeq(paths, maps.Keys(r.Secondary))
	slices.Sort(paths)
	return slices.Compact(paths)
}

// Relative rewrites every key relative to base. Keys that cannot be made
// relative are kept as they are.
func (r Result) Relative(base string) Result {
	return Result{
		Primary:   r.Primary.relative(base),
		Secondary: r.Secondary.relative(base),
	}
}

func (v Violations) relative(base string) Violations {
	out := make(Violations, len(v))
	for path, codes := range v {
		rel, err := filepath.Rel(base, path)
		if err != nil {
			rel = path
		}
		out[rel] = slices.Clone(codes)
	}
	return out
}

// Sorted returns the keys of v in lexical order.
func (v Violations) Sorted() []string {
	return slices.Sorted(maps.Keys(v))
}
