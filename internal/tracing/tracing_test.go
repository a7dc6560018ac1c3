package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProviderTagsService(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := NewProvider("posts-api", "test", sdktrace.WithSpanProcessor(sr))
	defer func() { require.NoError(t, tp.Shutdown(context.Background())) }()

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrs := map[string]string{}
	for _, kv := range spans[0].Resource().Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "posts-api", attrs["service.name"])
	assert.Equal(t, "test", attrs["service.version"])
}
