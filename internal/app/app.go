// Package app implements the application layer for crit.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/core/ports"
	"go.trai.ch/crit/internal/engine/cpm"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// manyCriticalPaths is the path count above which a schedule is reported with a warning.
// Tied parallel branches multiply the number of critical paths.
const manyCriticalPaths = 100

// TimingsToggle switches per-stage timing output on or off.
type TimingsToggle interface {
	SetEnabled(enabled bool)
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	loader        ports.ProjectLoader
	analyzer      *cpm.Analyzer
	fingerprinter ports.Fingerprinter
	store         ports.ReportStore
	renderers     ports.RendererRegistry
	watcher       ports.Watcher
	logger        ports.Logger
	timings       TimingsToggle

	stdout         io.Writer
	now            func() time.Time
	newRunID       func() string
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	analyzer *cpm.Analyzer,
	fingerprinter ports.Fingerprinter,
	store ports.ReportStore,
	renderers ports.RendererRegistry,
	watcher ports.Watcher,
	log ports.Logger,
	timings TimingsToggle,
) *App {
	return &App{
		loader:         loader,
		analyzer:       analyzer,
		fingerprinter:  fingerprinter,
		store:          store,
		renderers:      renderers,
		watcher:        watcher,
		logger:         log,
		timings:        timings,
		stdout:         os.Stdout,
		now:            time.Now,
		newRunID:       uuid.NewString,
		debounceWindow: 100 * time.Millisecond,
	}
}

// WithStdout sets the destination for reports that are not written to a file.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithClock replaces the clock and run id source. Used by tests for stable reports.
func (a *App) WithClock(now func() time.Time, newRunID func() string) *App {
	a.now = now
	a.newRunID = newRunID
	return a
}

// WithDebounceWindow sets how long watch mode waits for file events to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// SetLogJSON switches the logger to JSON output when it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(jsonLogger); ok {
		l.SetJSON(enable)
	}
}

// ScheduleOptions configuration for the Schedule method.
type ScheduleOptions struct {
	// Files are the project files to schedule. Empty means discover one from the cwd.
	Files         []string
	Format        string
	Output        string
	NoCache       bool
	Watch         bool
	FailOnOverrun bool
	Timings       bool
}

// Schedule computes and renders the schedule of every project file.
func (a *App) Schedule(ctx context.Context, opts ScheduleOptions) error {
	if a.timings != nil {
		a.timings.SetEnabled(opts.Timings)
	}

	format := opts.Format
	if format == "" {
		format = "table"
	}
	renderer, err := a.renderers.Renderer(format)
	if err != nil {
		return err
	}

	files, err := a.resolveFiles(opts.Files)
	if err != nil {
		return err
	}

	if opts.Output != "" && len(files) > 1 {
		return zerr.With(zerr.Wrap(domain.ErrOutputWithMultipleFiles, "cannot write report"), "files", len(files))
	}

	if opts.Watch {
		return a.watch(ctx, files, renderer, opts)
	}
	return a.scheduleOnce(ctx, files, renderer, opts)
}

// Clean removes the report cache.
func (a *App) Clean(_ context.Context) error {
	a.logger.Info("removing report cache...")
	if err := a.store.Clean(); err != nil {
		return err
	}
	a.logger.Info("removed report cache")
	return nil
}

func (a *App) resolveFiles(files []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}

	path, err := a.loader.Discover(cwd)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// scheduleOnce analyzes all files concurrently and renders the reports in argument order.
// A failing file does not stop the others. Every failure is logged as it is found and the
// returned error wraps domain.ErrScheduleFailed together with all of them.
func (a *App) scheduleOnce(ctx context.Context, files []string, renderer ports.Renderer, opts ScheduleOptions) error {
	reports := make([]*domain.Report, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			reports[i], errs[i] = a.compute(ctx, file, opts.NoCache)
			return nil
		})
	}
	_ = g.Wait()

	var failed error
	fail := func(err error) {
		a.logger.Error(err)
		failed = errors.Join(failed, err)
	}

	rendered := 0
	for i, report := range reports {
		if errs[i] != nil {
			fail(zerr.With(zerr.Wrap(errs[i], "cannot schedule project"), "file", files[i]))
			continue
		}

		if rendered > 0 && opts.Output == "" {
			_, _ = io.WriteString(a.stdout, "\n")
		}
		if err := a.render(renderer, report, opts.Output); err != nil {
			fail(zerr.With(err, "file", files[i]))
			continue
		}
		rendered++

		if opts.FailOnOverrun && report.Overran() {
			err := zerr.With(zerr.Wrap(domain.ErrDeadlineExceeded, report.Project.Name), "deadline", report.Deadline)
			fail(zerr.With(err, "overrun", report.Overrun))
		}
	}

	if failed != nil {
		return errors.Join(domain.ErrScheduleFailed, failed)
	}
	return nil
}

// compute loads one project file and returns its report, from the cache when possible.
func (a *App) compute(ctx context.Context, file string, noCache bool) (*domain.Report, error) {
	project, err := a.loader.Load(file)
	if err != nil {
		return nil, err
	}

	fingerprint := a.fingerprinter.Fingerprint(project)

	if !noCache {
		cached, err := a.store.Get(fingerprint)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("ignoring report cache for %s: %v", file, err))
		}
		if cached != nil {
			cached.Cached = true
			cached.Project.Source = project.Source
			return cached, nil
		}
	}

	g, schedule, err := a.analyzer.Analyze(ctx, project.Tasks)
	if err != nil {
		return nil, err
	}
	if n := len(schedule.CriticalPaths); n > manyCriticalPaths {
		a.logger.Warn(fmt.Sprintf("%s has %d critical paths", file, n))
	}

	report := domain.NewReport(project, g, schedule, domain.ReportMeta{
		RunID:       a.newRunID(),
		GeneratedAt: a.now().UTC(),
		Fingerprint: fingerprint,
	})

	if err := a.store.Put(report); err != nil {
		a.logger.Warn(fmt.Sprintf("could not cache report for %s: %v", file, err))
	}

	return report, nil
}

// render writes report to stdout, or to output when set.
func (a *App) render(renderer ports.Renderer, report *domain.Report, output string) error {
	if output == "" {
		return renderer.Render(a.stdout, report)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", output)
		}
	}

	//nolint:gosec // Output path is chosen by the user
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", output)
	}

	if err := renderer.Render(f, report); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", output)
	}

	a.logger.Info(fmt.Sprintf("wrote %s", output))
	return nil
}
