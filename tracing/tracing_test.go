package tracing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/arbiter/command"
	"github.com/viant/arbiter/event"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("arbiter", "0.0.1", fname))

	_, span := Start(context.Background(), "test")
	span.Annotate(attribute.String("k", "v")).End(nil)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRecorder_Listener(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	recorder := NewRecorder(provider)
	listener := recorder.Listener()

	drive := command.NewSubsystem("drive", nil)
	finished := command.NewInstant(nil, drive)
	finished.SetName("shift")
	interrupted := command.NewRun(nil)
	interrupted.SetName("idle")

	listener(event.NewEvent(event.Initialize, finished, 1))
	listener(event.NewEvent(event.Initialize, interrupted, 1))
	assert.Equal(t, 2, recorder.Open())
	listener(event.NewEvent(event.Execute, finished, 1))
	listener(event.NewEvent(event.Finish, finished, 1))
	listener(event.NewEvent(event.Execute, interrupted, 1))
	listener(event.NewEvent(event.Execute, interrupted, 2))
	listener(event.NewEvent(event.Interrupt, interrupted, 3))
	assert.Equal(t, 0, recorder.Open())

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "command shift", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Contains(t, spans[0].Attributes, attribute.StringSlice("command.requirements", []string{"drive"}))
	assert.Equal(t, "command idle", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Contains(t, spans[1].Attributes, attribute.Int("command.executions", 2))
}
