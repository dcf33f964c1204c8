package arbiter

import (
	"fmt"
	"io"
	"log"

	"github.com/viant/afs"
	"github.com/viant/arbiter/event"
	"github.com/viant/arbiter/progress"
	"github.com/viant/arbiter/routine"
	"github.com/viant/arbiter/scheduler"
	"github.com/viant/arbiter/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Service wires the scheduler with lifecycle events, progress accounting,
// tracing and routine loading.
type Service struct {
	config         *Config
	logger         *log.Logger
	logCloser      io.Closer
	onError        func(error)
	registry       *routine.Registry
	fs             afs.Service
	listeners      []event.Listener
	tracerProvider trace.TracerProvider

	publisher *event.Publisher
	scheduler *scheduler.Scheduler
	progress  *progress.Progress
	recorder  *tracing.Recorder
	routines  *routine.Service
	runtime   *Runtime
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.logger == nil {
		s.logger, s.logCloser = NewLogger(s.config.Log)
	}
	if s.registry == nil {
		s.registry = routine.NewRegistry()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	s.publisher = event.NewPublisher(s.logger)
	s.progress = progress.New(nil)
	s.publisher.Subscribe(s.progress.Listener())
	if s.tracerProvider != nil {
		s.recorder = tracing.NewRecorder(s.tracerProvider)
		s.publisher.Subscribe(s.recorder.Listener())
	}
	for _, listener := range s.listeners {
		s.publisher.Subscribe(listener)
	}
	schedulerOptions := []scheduler.Option{
		scheduler.WithConfig(s.config.Scheduler),
		scheduler.WithLogger(s.logger),
		scheduler.WithPublisher(s.publisher),
	}
	if s.onError != nil {
		schedulerOptions = append(schedulerOptions, scheduler.WithErrorHandler(s.onError))
	}
	s.scheduler = scheduler.New(schedulerOptions...)
	s.routines = routine.New(
		routine.WithFS(s.fs),
		routine.WithBaseURL(s.config.Routines.BaseURL),
		routine.WithRegistry(s.registry))
	s.runtime = &Runtime{
		scheduler: s.scheduler,
		routines:  s.routines,
		period:    s.config.Scheduler.Period,
		logger:    s.logger,
	}
}

// Config returns the effective configuration.
func (s *Service) Config() *Config { return s.config }

// Logger returns the service logger.
func (s *Service) Logger() *log.Logger { return s.logger }

// Scheduler returns the command scheduler.
func (s *Service) Scheduler() *scheduler.Scheduler { return s.scheduler }

// Publisher returns the lifecycle event publisher.
func (s *Service) Publisher() *event.Publisher { return s.publisher }

// Progress returns a snapshot of the lifecycle counters.
func (s *Service) Progress() progress.Progress { return s.progress.Snapshot() }

// Registry returns the routine command and condition registry.
func (s *Service) Registry() *routine.Registry { return s.registry }

// Routines returns the routine loader.
func (s *Service) Routines() *routine.Service { return s.routines }

// Runtime returns the tick driver.
func (s *Service) Runtime() *Runtime { return s.runtime }

// Close releases the log file, if any.
func (s *Service) Close() error {
	if s.logCloser == nil {
		return nil
	}
	return s.logCloser.Close()
}

// New creates a service.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

// NewFromConfig validates config, initialises tracing when enabled and
// creates a service. Options take precedence over config.
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	prefix := []Option{WithConfig(config)}
	if config.Tracing.Enabled {
		if err := tracing.Init(config.Tracing.ServiceName, config.Tracing.Version, config.Tracing.OutputFile); err != nil {
			return nil, fmt.Errorf("failed to initialise tracing: %w", err)
		}
		prefix = append(prefix, WithTracerProvider(otel.GetTracerProvider()))
	}
	return New(append(prefix, options...)...), nil
}
