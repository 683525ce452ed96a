package validator

import "errors"

// Faults reported by Validate before any traversal starts. Root errors are
// wrapped with the offending path; match them with errors.Is.
var (
	// Root directory errors
	ErrRootNotFound     = errors.New("root folder does not exist")
	ErrRootNotDirectory = errors.New("root path is not a directory")

	// Configuration errors
	ErrInvalidWorkers        = errors.New("worker count must be at least 1")
	ErrInvalidUserCodeLength = errors.New("user code length must be at least 1")
	ErrEmptyArchiveMarker    = errors.New("archive marker must not be empty")
)
