// Package report turns a validation result into something a person reads:
// paths relative to the checked root, optional glob exclusion, and text,
// JSON or YAML output.
package report

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mscheltienne/it-documentary-system-validator/validator"
)

// Report is a validation result keyed by slash-separated paths relative to
// Root. The root folder itself is ".".
type Report struct {
	Root      string               `json:"root" yaml:"root"`
	Primary   validator.Violations `json:"primary" yaml:"primary"`
	Secondary validator.Violations `json:"secondary" yaml:"secondary"`
}

// New relativizes res to root and drops every path matching one of the
// exclude patterns.
func New(res validator.Result, root string, exclude []string) (Report, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Report{}, fmt.Errorf("resolving root: %w", err)
	}
	rel := res.Relative(abs)
	r := Report{
		Root:      abs,
		Primary:   toSlash(rel.Primary),
		Secondary: toSlash(rel.Secondary),
	}
	if err := r.Exclude(exclude); err != nil {
		return Report{}, err
	}
	return r, nil
}

// Exclude removes every path matching one of the doublestar patterns.
// Patterns are matched against the slash-separated relative path.
func (r Report) Exclude(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	for _, v := range []validator.Violations{r.Primary, r.Secondary} {
		for path := range v {
			if matchAny(patterns, path) {
				delete(v, path)
			}
		}
	}
	return nil
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Empty reports whether neither map holds a violation.
func (r Report) Empty() bool {
	return len(r.Primary) == 0 && len(r.Secondary) == 0
}

func toSlash(v validator.Violations) validator.Violations {
	out := make(validator.Violations, len(v))
	for path, codes := range v {
		out[filepath.ToSlash(path)] = codes
	}
	return out
}
