package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crit/internal/adapters/telemetry"
	"go.trai.ch/crit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogBridge_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	bridge := telemetry.NewLogBridge(log)
	tp := telemetry.NewProvider(bridge)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracer(tp, "test")
	_, span := tracer.Start(context.Background(), "cpm.forward")
	span.End()
}

func TestLogBridge_ReportsStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var infos, warns []string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) })
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warns = append(warns, msg) })

	bridge := telemetry.NewLogBridge(log)
	bridge.SetEnabled(true)
	tp := telemetry.NewProvider(bridge)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracer(tp, "test")

	_, ok := tracer.Start(context.Background(), "cpm.forward")
	ok.End()

	_, failed := tracer.Start(context.Background(), "cpm.build")
	failed.RecordError(errors.New("cycle detected"))
	failed.End()

	if assert.Len(t, infos, 1) {
		assert.True(t, strings.HasPrefix(infos[0], "cpm.forward took "), infos[0])
	}
	if assert.Len(t, warns, 1) {
		assert.True(t, strings.HasPrefix(warns[0], "cpm.build failed after "), warns[0])
		assert.True(t, strings.HasSuffix(warns[0], ": cycle detected"), warns[0])
	}
}
