package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	shutdown, err := install(context.Background(), "bookstock-test", sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return recorder
}

func TestStartSpan(t *testing.T) {
	recorder := setupRecorder(t)

	ctx, parent := StartSpan(context.Background(), "test", "Parent")
	_, child := StartSpan(ctx, "test", "Child")
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "Child", spans[0].Name())
	assert.Equal(t, "Parent", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().TraceID(), spans[0].SpanContext().TraceID())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestRecordError(t *testing.T) {
	recorder := setupRecorder(t)

	_, span := StartSpan(context.Background(), "test", "Failing")
	RecordError(span, errors.New("boom"))
	RecordError(span, nil)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1)
}

func TestExtractIDs(t *testing.T) {
	setupRecorder(t)

	assert.Empty(t, ExtractTraceID(context.Background()))
	assert.Empty(t, ExtractSpanID(context.Background()))

	ctx, span := StartSpan(context.Background(), "test", "Op")
	defer span.End()
	assert.Len(t, ExtractTraceID(ctx), 32)
	assert.Len(t, ExtractSpanID(ctx), 16)
}
