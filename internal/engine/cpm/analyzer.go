package cpm

import (
	"context"

	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/core/ports"
)

// Analyzer runs the build, forward, backward and extract stages and traces each one.
type Analyzer struct {
	tracer ports.Tracer
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(tracer ports.Tracer) *Analyzer {
	return &Analyzer{tracer: tracer}
}

// Analyze builds the task graph from records and schedules it.
// Cancellation is checked between stages; the stages themselves never block.
func (a *Analyzer) Analyze(ctx context.Context, records []domain.TaskRecord) (*domain.TaskGraph, *domain.Schedule, error) {
	ctx, span := a.tracer.Start(ctx, "cpm.analyze", ports.WithAttribute("tasks", len(records)))
	defer span.End()

	g, err := stage(ctx, a.tracer, "cpm.build", func() (*domain.TaskGraph, error) {
		return domain.BuildGraph(records)
	})
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	a.tracer.EmitOrder(ctx, domain.TaskIDStrings(g.Order()))

	fwd, err := stage(ctx, a.tracer, "cpm.forward", func() (ForwardResult, error) {
		return ForwardPass(g), nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	span.SetAttribute("duration", fwd.ProjectFinish)

	bwd, err := stage(ctx, a.tracer, "cpm.backward", func() (BackwardResult, error) {
		return BackwardPass(g, fwd), nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	schedule, err := stage(ctx, a.tracer, "cpm.extract", func() (*domain.Schedule, error) {
		return Extract(g, fwd, bwd)
	})
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	span.SetAttribute("critical_paths", len(schedule.CriticalPaths))

	return g, schedule, nil
}

func stage[T any](ctx context.Context, tracer ports.Tracer, name string, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	_, span := tracer.Start(ctx, name)
	defer span.End()

	res, err := fn()
	if err != nil {
		span.RecordError(err)
		return zero, err
	}
	return res, nil
}
