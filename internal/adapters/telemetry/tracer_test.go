package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/fresh/internal/adapters/telemetry"
	"go.trai.ch/fresh/internal/core/ports"
)

func newRecordedTracer() (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return telemetry.NewOTelTracer(provider, "test"), recorder
}

func attributeMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestOTelTracer_StartAppliesAttributes(t *testing.T) {
	t.Parallel()

	tracer, recorder := newRecordedTracer()

	_, span := tracer.Start(context.Background(), "ensure",
		ports.WithAttribute("target", "out.txt"),
		ports.WithAttribute("depth", 2),
	)
	span.SetAttribute("rerun", true)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("count", int64(3))
	span.SetAttribute("inputs", []string{"a", "b"})
	span.SetAttribute("other", struct{ X int }{X: 1})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "ensure", ended[0].Name())

	attrs := attributeMap(ended[0].Attributes())
	assert.Equal(t, "out.txt", attrs["target"].AsString())
	assert.Equal(t, int64(2), attrs["depth"].AsInt64())
	assert.True(t, attrs["rerun"].AsBool())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, int64(3), attrs["count"].AsInt64())
	assert.Equal(t, []string{"a", "b"}, attrs["inputs"].AsStringSlice())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelTracer_RecordErrorSetsStatus(t *testing.T) {
	t.Parallel()

	tracer, recorder := newRecordedTracer()

	_, span := tracer.Start(context.Background(), "execute")
	span.RecordError(errors.New("exit status 1"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "exit status 1", ended[0].Status().Description)
}

func TestOTelTracer_WriteAddsLogEvent(t *testing.T) {
	t.Parallel()

	tracer, recorder := newRecordedTracer()

	_, span := tracer.Start(context.Background(), "execute")
	n, err := span.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "log", events[0].Name)
	assert.Equal(t, "hello\n", attributeMap(events[0].Attributes)["message"].AsString())
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	t.Parallel()

	tracer, recorder := newRecordedTracer()

	ctx, span := tracer.Start(context.Background(), "project")
	tracer.EmitPlan(ctx, []string{"app", "docs"})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
	assert.Equal(t, []string{"app", "docs"}, attributeMap(events[0].Attributes)["targets"].AsStringSlice())
}

func TestOTelTracer_EmitPlanWithoutSpan(t *testing.T) {
	t.Parallel()

	tracer, recorder := newRecordedTracer()

	assert.NotPanics(t, func() {
		tracer.EmitPlan(context.Background(), []string{"app"})
	})
	assert.Empty(t, recorder.Ended())
}
