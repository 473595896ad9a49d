package otel

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"coffeeshop/pkg/logger"
)

func TestAddSpanWithoutTracer(t *testing.T) {
	ctx, span := AddSpan(context.Background(), "noop")
	defer span.End()

	require.False(t, span.SpanContext().IsValid())
	require.Empty(t, GetTraceID(ctx))
}

func TestAddSpanWithTracer(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
	defer tp.Shutdown(context.Background())

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "placeOrder")
	defer span.End()

	require.True(t, span.SpanContext().IsValid())
	require.Len(t, GetTraceID(ctx), 32)
}

func TestInitTracingWithoutHost(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "test", nil)
	tp, shutdown, err := InitTracing(log, Config{ServiceName: "test", Probability: 1})
	require.NoError(t, err)
	require.NotNil(t, tp)
	shutdown(context.Background())
}

func TestInitTracingStdout(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "test", nil)
	tp, shutdown, err := InitTracing(log, Config{ServiceName: "test", Host: StdoutHost, Probability: 1})
	require.NoError(t, err)
	defer shutdown(context.Background())

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	_, span := AddSpan(ctx, "checkout")
	require.True(t, span.SpanContext().IsValid())
	span.End()
}
