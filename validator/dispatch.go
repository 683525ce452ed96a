package validator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// hardwareParallelism is a variable so tests can pin it.
var hardwareParallelism = runtime.NumCPU

// Validate checks the folder at root and everything below it. The root must
// exist and be a directory; option faults are reported before any
// traversal. Result keys are absolute paths. With opts.Workers > 1 the
// root's direct subfolders are fanned out across a bounded pool; the result
// is identical to a sequential run.
func Validate(ctx context.Context, root string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return Result{}, fmt.Errorf("resolving root: %w", err)
	}
	info, err := os.Stat(root)
	if errors.Is(err, os.ErrNotExist) {
		return Result{}, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	if err != nil {
		return Result{}, fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	w := newWalker(opts)
	if opts.Workers <= 1 {
		return w.walk(ctx, root, nil)
	}
	return w.dispatch(ctx, root, opts.Workers)
}

// dispatch validates the root name and its files synchronously, then runs
// one walker per direct subfolder. Each worker fills its own slot in the
// results slice, so no locking is needed before the merge.
func (w *walker) dispatch(ctx context.Context, root string, requested int) (Result, error) {
	res, state, subdirs, err := w.visit(ctx, root, nil)
	if err != nil {
		return Result{}, err
	}
	workers := w.clamp(requested, len(subdirs))
	if len(subdirs) == 0 {
		w.log.Debug("no subfolders to dispatch", zap.String("root", root))
		return res, nil
	}

	w.log.Debug("dispatching subfolders",
		zap.String("root", root),
		zap.Int("subfolders", len(subdirs)),
		zap.Int("workers", workers))

	results := make([]Result, len(subdirs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, dir := range subdirs {
		g.Go(func() error {
			sub, err := w.walk(gctx, dir, &state)
			if err != nil {
				return err
			}
			results[i] = sub
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	for _, sub := range results {
		res.merge(sub)
	}
	return res, nil
}

// clamp bounds the worker count by the subfolder count and the hardware
// parallelism, warning each time a cap is applied.
func (w *walker) clamp(requested, subfolders int) int {
	workers := requested
	if workers > subfolders {
		w.log.Warn("requested workers exceed the number of subfolders, reducing",
			zap.Int("requested", requested),
			zap.Int("subfolders", subfolders))
		workers = subfolders
	}
	if cpus := hardwareParallelism(); workers > cpus {
		w.log.Warn("requested workers exceed the available CPUs, reducing",
			zap.Int("requested", requested),
			zap.Int("cpus", cpus))
		workers = cpus
	}
	return max(workers, 1)
}
