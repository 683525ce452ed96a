package validator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// walker validates one subtree depth-first. It holds no mutable state, so
// several goroutines may share one walker as long as their subtrees are
// disjoint.
type walker struct {
	opts Options
	now  time.Time
	log  *zap.Logger
}

func newWalker(opts Options) *walker {
	return &walker{opts: opts, now: opts.now(), log: opts.logger()}
}

// folderState is what a visited folder hands down to its children.
type folderState struct {
	parent Parent
	raw    []Code
}

// walk validates the folder at path and everything below it. parent is nil
// for the root of the traversal.
func (w *walker) walk(ctx context.Context, path string, parent *folderState) (Result, error) {
	res, state, subdirs, err := w.visit(ctx, path, parent)
	if err != nil {
		return Result{}, err
	}
	for _, dir := range subdirs {
		sub, err := w.walk(ctx, dir, &state)
		if err != nil {
			return Result{}, err
		}
		res.merge(sub)
	}
	return res, nil
}

// visit validates a folder name and its direct files. It returns the state
// for the children and the non-archive subfolders still to be walked.
func (w *walker) visit(ctx context.Context, path string, parent *folderState) (Result, folderState, []string, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, folderState{}, nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return Result{}, folderState{}, nil, fmt.Errorf("reading folder %s: %w", path, err)
	}

	res := newResult()
	name := filepath.Base(path)
	state := w.checkFolder(name, parent)

	var subdirs, subnames []string
	var files []os.DirEntry
	for _, e := range entries {
		switch {
		case e.IsDir() && w.opts.IsArchive(e.Name()):
			w.log.Debug("skipping archive folder", zap.String("path", filepath.Join(path, e.Name())))
		case e.IsDir():
			subdirs = append(subdirs, filepath.Join(path, e.Name()))
			subnames = append(subnames, e.Name())
		default:
			files = append(files, e)
		}
	}

	raw := state.raw
	// An unparseable folder keeps its single catch-all code.
	if w.opts.CheckSiblings && state.parent.Valid {
		raw = append(raw[:len(raw):len(raw)], CheckSiblings(subnames)...)
	}
	var parentRaw []Code
	if parent != nil {
		parentRaw = parent.raw
	}
	res.record(path, raw, parentRaw)

	for _, f := range files {
		res.record(filepath.Join(path, f.Name()), w.checkFileName(f.Name(), state.parent), state.raw)
	}
	return res, state, subdirs, nil
}

// checkFolder returns the raw violations of a folder name together with the
// parent description its children will compare against.
func (w *walker) checkFolder(name string, parent *folderState) folderState {
	if !MatchesFolderShape(name) {
		return folderState{raw: []Code{FolderUnparseable}}
	}
	parsed, err := ParseFolderName(name)
	if err != nil {
		return folderState{raw: []Code{FolderUnparseable}}
	}
	var p *Parent
	if parent != nil {
		p = &parent.parent
	}
	return folderState{
		parent: Parent{Code: parsed.Code, Valid: true},
		raw:    CheckFolder(name, parsed, p, w.opts),
	}
}

func (w *walker) checkFileName(name string, folder Parent) []Code {
	stem := fileStem(name)
	if !MatchesFileShape(stem) {
		return []Code{FileUnparseable}
	}
	parsed, err := ParseFileStem(stem)
	if err != nil {
		return []Code{FileUnparseable}
	}
	return CheckFile(stem, parsed, folder, w.now, w.opts)
}
