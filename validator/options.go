package validator

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultArchiveMarker is the reserved subfolder name skipped by the walker.
const DefaultArchiveMarker = "__old"

// DefaultForbiddenCharacters may not appear in the free text of any name.
const DefaultForbiddenCharacters = "-! ."

// DefaultUserCodeLength is the fixed length of the user code in file stems.
const DefaultUserCodeLength = 3

// Options is passed explicitly through every call of an invocation. There is
// no package-level configuration.
type Options struct {
	ArchiveMarker          string
	ArchiveCaseInsensitive bool
	ForbiddenCharacters    string
	UserCodeLength         int
	CheckSiblings          bool
	Workers                int

	// Logger receives clamp warnings and traversal debug output. Nil means
	// no logging.
	Logger *zap.Logger

	// Now is the validation clock, read once per invocation. Nil means
	// time.Now.
	Now func() time.Time
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ArchiveMarker:       DefaultArchiveMarker,
		ForbiddenCharacters: DefaultForbiddenCharacters,
		UserCodeLength:      DefaultUserCodeLength,
		Workers:             1,
	}
}

// Validate rejects options that cannot drive a traversal.
func (o Options) Validate() error {
	if o.Workers < 1 {
		return ErrInvalidWorkers
	}
	if o.UserCodeLength < 1 {
		return ErrInvalidUserCodeLength
	}
	if o.ArchiveMarker == "" {
		return ErrEmptyArchiveMarker
	}
	return nil
}

// IsArchive reports whether a folder called name is skipped by traversal.
func (o Options) IsArchive(name string) bool {
	if o.ArchiveCaseInsensitive {
		return strings.EqualFold(name, o.ArchiveMarker)
	}
	return name == o.ArchiveMarker
}

func (o Options) hasForbidden(text string) bool {
	return o.ForbiddenCharacters != "" && strings.ContainsAny(text, o.ForbiddenCharacters)
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}
