package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/crit/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the watcher adapter
	"go.trai.ch/crit/internal/core/ports"
	"go.trai.ch/zerr"
)

// watch schedules files once, then again every time one of them changes, until ctx is done.
// Failures are logged rather than returned so that fixing a broken file resumes the output.
func (a *App) watch(ctx context.Context, files []string, renderer ports.Renderer, opts ScheduleOptions) error {
	targets := make(map[string]struct{}, len(files))
	dirs := make([]string, 0, len(files))
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve project file"), "file", file)
		}
		targets[abs] = struct{}{}
		dirs = append(dirs, filepath.Dir(abs))
	}
	slices.Sort(dirs)
	dirs = slices.Compact(dirs)

	if err := a.watcher.Start(ctx, dirs); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	changes := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		select {
		case changes <- paths:
		default:
			// A rerun is already queued and will pick up this change.
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			if _, ok := targets[filepath.Clean(event.Path)]; ok {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.rerun(ctx, files, renderer, opts)
	a.logger.Info(fmt.Sprintf("watching %s for changes", strings.Join(files, ", ")))

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-changes:
			a.logger.Info(fmt.Sprintf("%s changed, rescheduling", strings.Join(paths, ", ")))
			a.rerun(ctx, files, renderer, opts)
		}
	}
}

func (a *App) rerun(ctx context.Context, files []string, renderer ports.Renderer, opts ScheduleOptions) {
	// Per-file failures are already logged by scheduleOnce.
	_ = a.scheduleOnce(ctx, files, renderer, opts)
}
