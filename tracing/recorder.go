package tracing

import (
	"context"
	"errors"
	"sync"

	"github.com/viant/arbiter/event"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrInterrupted is recorded on spans of interrupted commands.
var ErrInterrupted = errors.New("command interrupted")

// Recorder turns lifecycle events into spans, one per command activation.
type Recorder struct {
	tracer trace.Tracer
	mux    sync.Mutex
	spans  map[string]*Span
	ticks  map[string]int
}

// NewRecorder returns a recorder using provider, or the global provider when
// nil.
func NewRecorder(provider trace.TracerProvider) *Recorder {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &Recorder{
		tracer: provider.Tracer(instrumentationName),
		spans:  make(map[string]*Span),
		ticks:  make(map[string]int),
	}
}

// Open returns the number of activations whose span is still open.
func (r *Recorder) Open() int {
	r.mux.Lock()
	defer r.mux.Unlock()
	return len(r.spans)
}

// Listener returns the event listener driving the recorder.
func (r *Recorder) Listener() event.Listener {
	return func(e *event.Event) {
		if e.Context == nil {
			return
		}
		id := e.Context.CommandID
		r.mux.Lock()
		defer r.mux.Unlock()
		switch e.Type {
		case event.Initialize:
			_, span := start(context.Background(), r.tracer, "command "+e.Context.Command)
			span.Annotate(
				attribute.String("command.id", id),
				attribute.String("command.name", e.Context.Command),
				attribute.StringSlice("command.requirements", e.Context.Requirements),
				attribute.Int64("scheduler.tick", int64(e.Context.Tick)),
			)
			r.spans[id] = span
			r.ticks[id] = 0
		case event.Execute:
			r.ticks[id]++
		case event.Finish, event.Interrupt:
			span, ok := r.spans[id]
			if !ok {
				return
			}
			span.Annotate(attribute.Int("command.executions", r.ticks[id]))
			var err error
			if e.Type == event.Interrupt {
				err = ErrInterrupted
			}
			span.End(err)
			delete(r.spans, id)
			delete(r.ticks, id)
		}
	}
}
