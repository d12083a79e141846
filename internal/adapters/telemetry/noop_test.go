package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/adapters/telemetry"
	"go.trai.ch/fresh/internal/core/ports"
)

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	gotCtx, span := tracer.Start(ctx, "ensure", ports.WithAttribute("target", "a"))
	assert.Equal(t, ctx, gotCtx)
	require.NotNil(t, span)

	tracer.EmitPlan(ctx, []string{"a"})
	span.SetAttribute("key", "value")
	span.RecordError(errors.New("boom"))

	n, err := span.Write([]byte("output"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	span.End()
}
