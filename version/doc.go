// Package version reports the docval version shown by --version.
//
// The version, commit and date are injected at build time:
//
//	-ldflags "-X github.com/mscheltienne/it-documentary-system-validator/version.Version=v1.0.0"
//
// Without injection the values come from debug.ReadBuildInfo, which knows the
// module version for `go install` builds and the VCS revision for local ones.
package version
