package scheduler

import (
	"log"

	"github.com/viant/arbiter/event"
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithConfig sets the scheduler configuration.
func WithConfig(config Config) Option {
	return func(s *Scheduler) {
		s.config = config
	}
}

// WithLogger sets the logger used for warnings and default error reports.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithErrorHandler sets the side channel receiving programming errors.
func WithErrorHandler(handler func(error)) Option {
	return func(s *Scheduler) {
		s.onError = handler
	}
}

// WithPublisher sets the lifecycle event publisher.
func WithPublisher(publisher *event.Publisher) Option {
	return func(s *Scheduler) {
		s.publisher = publisher
	}
}

// WithListeners subscribes lifecycle listeners.
func WithListeners(listeners ...event.Listener) Option {
	return func(s *Scheduler) {
		s.listeners = append(s.listeners, listeners...)
	}
}
