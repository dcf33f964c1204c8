package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/viant/arbiter"

var (
	installOnce sync.Once
	installErr  error
)

// Init installs a global tracer provider exporting spans to outputFile, or to
// os.Stdout when outputFile is empty. Only the first call takes effect.
func Init(serviceName, serviceVersion, outputFile string) error {
	installOnce.Do(func() {
		var w io.Writer = os.Stdout
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				installErr = err
				return
			}
			w = f
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			installErr = err
			return
		}
		res, err := resource.New(context.Background(), resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		))
		if err != nil {
			installErr = err
			return
		}
		otel.SetTracerProvider(sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			sdktrace.WithResource(res),
		))
	})
	return installErr
}

// Span is one traced command activation.
type Span struct {
	span trace.Span
}

// Annotate sets attributes on the span.
func (s *Span) Annotate(attrs ...attribute.KeyValue) *Span {
	if s != nil && len(attrs) > 0 {
		s.span.SetAttributes(attrs...)
	}
	return s
}

// End closes the span with an OK status, or records err as an error status.
func (s *Span) End(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}

// Start opens an internal span on the global tracer provider.
func Start(ctx context.Context, name string) (context.Context, *Span) {
	return start(ctx, otel.Tracer(instrumentationName), name)
}

func start(ctx context.Context, tracer trace.Tracer, name string) (context.Context, *Span) {
	ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}
