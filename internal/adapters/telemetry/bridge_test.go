package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.trai.ch/fresh/internal/adapters/telemetry"
	"go.trai.ch/fresh/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnEndLogsDuration(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		logged = msg
	}).Times(1)

	provider := telemetry.NewProvider(mockLogger)
	_, span := provider.Tracer("test").Start(context.Background(), "build app")
	span.End()

	assert.Contains(t, logged, "build app finished in ")
}

func TestBridge_OnEndLogsFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		logged = msg
	}).Times(1)

	provider := telemetry.NewProvider(mockLogger)
	_, span := provider.Tracer("test").Start(context.Background(), "build app")
	span.SetStatus(codes.Error, "command failed")
	span.End()

	assert.Contains(t, logged, "build app failed after ")
	assert.Contains(t, logged, ": command failed")
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	bridge := telemetry.NewBridge(mocks.NewMockLogger(ctrl))

	require.NoError(t, bridge.ForceFlush(context.Background()))
	require.NoError(t, bridge.Shutdown(context.Background()))
}
