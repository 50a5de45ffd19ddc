package cpm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/crit/internal/adapters/telemetry"
	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/core/ports/mocks"
	"go.trai.ch/crit/internal/engine/cpm"
	"go.uber.org/mock/gomock"
)

func newTracedAnalyzer(t *testing.T) (*cpm.Analyzer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return cpm.NewAnalyzer(telemetry.NewOTelTracer(tp, "test")), sr
}

func spanNames(sr *tracetest.SpanRecorder) []string {
	var names []string
	for _, s := range sr.Ended() {
		names = append(names, s.Name())
	}
	return names
}

func TestAnalyzer_Analyze(t *testing.T) {
	analyzer, sr := newTracedAnalyzer(t)

	g, s, err := analyzer.Analyze(context.Background(), []domain.TaskRecord{
		rec("A", 3),
		rec("B", 2, "A"),
		rec("C", 4, "A"),
		rec("D", 1, "B", "C"),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 8, s.Duration)
	assert.Equal(t, [][]string{{"A", "C", "D"}}, pathStrings(s))

	assert.Equal(t, []string{"cpm.build", "cpm.forward", "cpm.backward", "cpm.extract", "cpm.analyze"}, spanNames(sr))

	root := sr.Ended()[4]
	require.Len(t, root.Events(), 1)
	assert.Equal(t, "order_emitted", root.Events()[0].Name)
}

func TestAnalyzer_BuildError(t *testing.T) {
	analyzer, sr := newTracedAnalyzer(t)

	g, s, err := analyzer.Analyze(context.Background(), []domain.TaskRecord{
		rec("A", 1, "B"),
		rec("B", 1, "A"),
	})
	require.ErrorIs(t, err, domain.ErrCycleDetected)
	assert.Nil(t, g)
	assert.Nil(t, s)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "cpm.build", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestAnalyzer_Cancelled(t *testing.T) {
	analyzer, sr := newTracedAnalyzer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := analyzer.Analyze(ctx, []domain.TaskRecord{rec("A", 1)})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"cpm.analyze"}, spanNames(sr))
}

func TestAnalyzer_NoOpTracer(t *testing.T) {
	analyzer := cpm.NewAnalyzer(telemetry.NewNoOpTracer())

	_, s, err := analyzer.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Duration)
	assert.Empty(t, s.CriticalPaths)
}

func TestAnalyzer_SpanCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	root := mocks.NewMockSpan(ctrl)
	ctx := context.Background()

	tracer.EXPECT().Start(gomock.Any(), "cpm.analyze", gomock.Any()).Return(ctx, root)
	for _, name := range []string{"cpm.build", "cpm.forward", "cpm.backward", "cpm.extract"} {
		stage := mocks.NewMockSpan(ctrl)
		stage.EXPECT().End()
		tracer.EXPECT().Start(gomock.Any(), name, gomock.Any()).Return(ctx, stage)
	}
	tracer.EXPECT().EmitOrder(gomock.Any(), []string{"A", "B"})
	root.EXPECT().SetAttribute("duration", 3)
	root.EXPECT().SetAttribute("critical_paths", 1)
	root.EXPECT().End()

	_, s, err := cpm.NewAnalyzer(tracer).Analyze(ctx, []domain.TaskRecord{rec("A", 1), rec("B", 2, "A")})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Duration)
}

func TestAnalyzer_SpanErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	root := mocks.NewMockSpan(ctrl)
	build := mocks.NewMockSpan(ctrl)
	ctx := context.Background()

	unknownPredecessor := gomock.Cond(func(err error) bool {
		return errors.Is(err, domain.ErrUnknownPredecessor)
	})

	gomock.InOrder(
		tracer.EXPECT().Start(gomock.Any(), "cpm.analyze", gomock.Any()).Return(ctx, root),
		tracer.EXPECT().Start(gomock.Any(), "cpm.build", gomock.Any()).Return(ctx, build),
		build.EXPECT().RecordError(unknownPredecessor),
		build.EXPECT().End(),
		root.EXPECT().RecordError(unknownPredecessor),
		root.EXPECT().End(),
	)

	g, s, err := cpm.NewAnalyzer(tracer).Analyze(ctx, []domain.TaskRecord{rec("A", 1, "ghost")})
	require.ErrorIs(t, err, domain.ErrUnknownPredecessor)
	assert.Nil(t, g)
	assert.Nil(t, s)
}
