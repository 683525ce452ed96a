// Package validator checks that the folders and files of a coded documentary
// tree follow the naming scheme.
//
// Naming scheme:
//
//	folder:    _<Code>_<FreeText>                   e.g. _F1a_Protocols
//	file stem: <Code>_<YYMMDD>_<FreeText>_<USER>    e.g. F1a_230101_report_ABC
//
// A code is 'F', digits, then lowercase letters. A subfolder's code is its
// parent's code plus exactly one lowercase letter; a file's code equals its
// folder's code. Free text must not contain any forbidden character.
//
// Pipeline per entity:
//
//   - Shape: a coarse pattern match (MatchesFolderShape, MatchesFileShape).
//     A failure records a single "unparseable" code and stops further checks
//     on that entity; its children are still visited.
//   - Parse: ParseFolderName / ParseFileStem split the name into its parts.
//   - Rules: CheckFolder / CheckFile produce raw codes, optionally
//     CheckSiblings on a folder's subfolders.
//   - Classify: codes caused only by a broken parent are demoted to the
//     secondary map so one bad folder does not flood the report.
//
// Traversal is depth-first. Folders named like the archive marker ("__old"
// by default) are skipped entirely. With more than one worker, each direct
// subfolder of the root is walked by its own goroutine and the disjoint
// results are merged; the output is identical to a sequential run.
//
// All configuration travels in an explicit Options value. Nothing is cached
// across calls.
package validator
