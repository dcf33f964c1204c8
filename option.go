package arbiter

import (
	"log"

	"github.com/viant/afs"
	"github.com/viant/arbiter/event"
	"github.com/viant/arbiter/routine"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Service.
type Option func(s *Service)

// WithConfig sets the engine configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithLogger sets the logger shared by the scheduler and event publisher.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithErrorHandler sets the receiver of scheduler programming errors.
func WithErrorHandler(handler func(error)) Option {
	return func(s *Service) {
		s.onError = handler
	}
}

// WithRegistry sets the command and condition registry used by routines.
func WithRegistry(registry *routine.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithRoutineFS sets the file system routines are loaded from.
func WithRoutineFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithListeners subscribes lifecycle event listeners.
func WithListeners(listeners ...event.Listener) Option {
	return func(s *Service) {
		s.listeners = append(s.listeners, listeners...)
	}
}

// WithTracerProvider records one span per command activation with provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracerProvider = provider
	}
}
