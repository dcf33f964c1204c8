package scheduler

import (
	"context"
	"log"
	"slices"
	"time"

	"github.com/viant/arbiter/command"
	"github.com/viant/arbiter/event"
	"github.com/viant/arbiter/internal/clock"
)

type actionKind int

const (
	scheduleAction actionKind = iota
	cancelAction
)

// action is a deferred schedule or cancel request.
type action struct {
	kind actionKind
	cmd  command.Command
}

// entry is the per-activation state of an active command.
type entry struct {
	initialized bool
	admittedAt  time.Time
}

// Binding is a trigger registration polled once per Run: when When reports
// true, Do is invoked. Do may schedule or cancel commands; those requests are
// queued and applied in the same Run.
type Binding struct {
	When func() bool
	Do   func(ctx context.Context)
}

// Scheduler arbitrates subsystem ownership between commands and executes the
// active ones once per tick.
type Scheduler struct {
	config    Config
	logger    *log.Logger
	onError   func(error)
	publisher *event.Publisher
	listeners []event.Listener

	subsystems []command.Subsystem
	defaults   map[command.Subsystem]command.Command
	owners     map[command.Subsystem]command.Command
	active     []command.Command
	entries    map[command.Command]*entry
	pending    []action
	bindings   []Binding

	disabled bool
	inRun    bool
	tick     uint64
}

// New creates a scheduler.
func New(options ...Option) *Scheduler {
	s := &Scheduler{config: DefaultConfig()}
	for _, opt := range options {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.onError == nil {
		s.onError = func(err error) { s.logger.Printf("%v", err) }
	}
	if s.publisher == nil {
		s.publisher = event.NewPublisher(s.logger)
	}
	for _, listener := range s.listeners {
		s.publisher.Subscribe(listener)
	}
	s.listeners = nil
	s.init()
	return s
}

func (s *Scheduler) init() {
	s.subsystems = nil
	s.defaults = make(map[command.Subsystem]command.Command)
	s.owners = make(map[command.Subsystem]command.Command)
	s.entries = make(map[command.Command]*entry)
	s.active = nil
	s.pending = nil
	s.bindings = nil
	s.disabled = s.config.StartDisabled
	s.tick = 0
}

// Reset cancels every active command and returns the scheduler to its
// freshly constructed state. Listeners are kept.
func (s *Scheduler) Reset() {
	if s.inRun {
		s.report(&ProgrammingError{Op: "reset", Err: ErrReentrantRun})
		return
	}
	s.CancelAll()
	s.init()
}

// Tick returns the number of Run passes started so far.
func (s *Scheduler) Tick() uint64 { return s.tick }

// Publisher returns the lifecycle event publisher.
func (s *Scheduler) Publisher() *event.Publisher { return s.publisher }

// Run performs one arbitration and execution pass.
func (s *Scheduler) Run(ctx context.Context) {
	if s.inRun {
		s.report(&ProgrammingError{Op: "run", Err: ErrReentrantRun})
		return
	}
	s.inRun = true
	defer func() { s.inRun = false }()
	started := clock.Now()
	s.tick++
	ctx = command.WithScheduler(ctx, s)

	for _, binding := range slices.Clone(s.bindings) {
		if binding.When != nil && binding.When() && binding.Do != nil {
			binding.Do(ctx)
		}
	}
	s.drain(ctx)

	for _, cmd := range slices.Clone(s.active) {
		if _, ok := s.entries[cmd]; !ok {
			continue
		}
		if s.disabled && !cmd.RunsWhenDisabled() {
			s.end(ctx, cmd, true)
			continue
		}
		cmd.Execute(ctx)
		s.publish(event.Execute, cmd)
		if cmd.IsFinished() {
			s.end(ctx, cmd, false)
		}
	}
	s.drain(ctx)

	for _, subsystem := range s.subsystems {
		cmd, ok := s.defaults[subsystem]
		if !ok {
			continue
		}
		if _, owned := s.owners[subsystem]; owned {
			continue
		}
		s.pending = append(s.pending, action{kind: scheduleAction, cmd: cmd})
	}
	s.drain(ctx)

	for _, subsystem := range slices.Clone(s.subsystems) {
		subsystem.Periodic(ctx)
	}

	if s.config.WarnOnOverrun && s.config.Period > 0 {
		if elapsed := clock.Since(started); elapsed > s.config.Period {
			s.logger.Printf("scheduler: loop overrun on tick %d: %s exceeds period %s", s.tick, elapsed, s.config.Period)
		}
	}
}

// Schedule queues cmd for admission on the next arbitration pass. Outside
// Run that is the next call to Run; inside Run it is the pass following the
// current step.
func (s *Scheduler) Schedule(cmd command.Command) {
	if cmd == nil {
		return
	}
	s.pending = append(s.pending, action{kind: scheduleAction, cmd: cmd})
}

// Cancel interrupts cmd. Outside Run the command is ended immediately and any
// queued schedule request for it is dropped; inside Run the request is queued.
// Cancelling an inactive command is a no-op.
func (s *Scheduler) Cancel(cmd command.Command) {
	if cmd == nil {
		return
	}
	if s.inRun {
		s.pending = append(s.pending, action{kind: cancelAction, cmd: cmd})
		return
	}
	s.pending = slices.DeleteFunc(s.pending, func(a action) bool {
		return a.kind == scheduleAction && a.cmd == cmd
	})
	s.cancel(s.context(), cmd)
}

// CancelAll interrupts every active command.
func (s *Scheduler) CancelAll() {
	for _, cmd := range slices.Clone(s.active) {
		s.Cancel(cmd)
	}
}

// IsScheduled reports whether cmd is active.
func (s *Scheduler) IsScheduled(cmd command.Command) bool {
	if cmd == nil {
		return false
	}
	_, ok := s.entries[cmd]
	return ok
}

// ActiveCommands returns the active commands in admission order.
func (s *Scheduler) ActiveCommands() []command.Command {
	return slices.Clone(s.active)
}

// Pending returns the number of queued requests.
func (s *Scheduler) Pending() int { return len(s.pending) }

// Requiring returns the active command owning subsystem, or nil.
func (s *Scheduler) Requiring(subsystem command.Subsystem) command.Command {
	return s.owners[subsystem]
}

// Enable lets commands run.
func (s *Scheduler) Enable() { s.disabled = false }

// Disable rejects new commands that do not run when disabled and interrupts
// active ones on the next Run.
func (s *Scheduler) Disable() { s.disabled = true }

// IsEnabled reports whether the scheduler is enabled.
func (s *Scheduler) IsEnabled() bool { return !s.disabled }

// AddBinding registers a trigger binding.
func (s *Scheduler) AddBinding(when func() bool, do func(ctx context.Context)) {
	s.bindings = append(s.bindings, Binding{When: when, Do: do})
}

// ClearBindings removes every trigger binding.
func (s *Scheduler) ClearBindings() {
	s.bindings = nil
}

// OnInitialize registers fn to observe command initialization.
func (s *Scheduler) OnInitialize(fn func(cmd command.Command)) { s.observe(event.Initialize, fn) }

// OnExecute registers fn to observe command execution.
func (s *Scheduler) OnExecute(fn func(cmd command.Command)) { s.observe(event.Execute, fn) }

// OnInterrupt registers fn to observe command interruption.
func (s *Scheduler) OnInterrupt(fn func(cmd command.Command)) { s.observe(event.Interrupt, fn) }

// OnFinish registers fn to observe normal command completion.
func (s *Scheduler) OnFinish(fn func(cmd command.Command)) { s.observe(event.Finish, fn) }

func (s *Scheduler) observe(eventType event.Type, fn func(cmd command.Command)) {
	if fn == nil {
		return
	}
	s.publisher.Subscribe(event.Filter(func(e *event.Event) { fn(e.Command) }, eventType))
}

func (s *Scheduler) context() context.Context {
	return command.WithScheduler(context.Background(), s)
}

func (s *Scheduler) drain(ctx context.Context) {
	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		switch next.kind {
		case scheduleAction:
			s.admit(ctx, next.cmd)
		case cancelAction:
			s.cancel(ctx, next.cmd)
		}
	}
}

// admit applies a schedule request. Conflicting incumbents are visited in
// the order of cmd's requirements: CancelSelf incumbents are interrupted on
// the spot and the first CancelIncoming incumbent aborts admission. Earlier
// interruptions are not rolled back.
func (s *Scheduler) admit(ctx context.Context, cmd command.Command) {
	if _, ok := s.entries[cmd]; ok {
		return
	}
	if cmd.IsGrouped() {
		s.report(&ProgrammingError{Op: "schedule", Command: cmd.Name(), Err: command.ErrAlreadyGrouped})
		return
	}
	if s.disabled && !cmd.RunsWhenDisabled() {
		return
	}
	requirements := cmd.Requirements()
	for _, incumbent := range s.conflicts(requirements) {
		if _, ok := s.entries[incumbent]; !ok {
			continue
		}
		if incumbent.InterruptionBehavior() == command.CancelIncoming {
			return
		}
		s.end(ctx, incumbent, true)
	}

	cmd.Initialize(ctx)
	s.entries[cmd] = &entry{initialized: true, admittedAt: clock.Now()}
	s.active = append(s.active, cmd)
	for _, subsystem := range requirements {
		s.owners[subsystem] = cmd
	}
	s.publish(event.Initialize, cmd)
}

func (s *Scheduler) conflicts(requirements command.Requirements) []command.Command {
	var ret []command.Command
	for _, subsystem := range requirements {
		owner, ok := s.owners[subsystem]
		if !ok || slices.Contains(ret, owner) {
			continue
		}
		ret = append(ret, owner)
	}
	return ret
}

func (s *Scheduler) cancel(ctx context.Context, cmd command.Command) {
	if _, ok := s.entries[cmd]; !ok {
		return
	}
	s.end(ctx, cmd, true)
}

// end releases cmd before calling End so that requests issued from End never
// observe it as active.
func (s *Scheduler) end(ctx context.Context, cmd command.Command, interrupted bool) {
	s.release(cmd)
	cmd.End(ctx, interrupted)
	if interrupted {
		s.publish(event.Interrupt, cmd)
	} else {
		s.publish(event.Finish, cmd)
	}
}

func (s *Scheduler) release(cmd command.Command) {
	delete(s.entries, cmd)
	s.active = slices.DeleteFunc(s.active, func(candidate command.Command) bool { return candidate == cmd })
	for _, subsystem := range cmd.Requirements() {
		if s.owners[subsystem] == cmd {
			delete(s.owners, subsystem)
		}
	}
}

func (s *Scheduler) publish(eventType event.Type, cmd command.Command) {
	if s.publisher.Len() == 0 {
		return
	}
	s.publisher.Publish(event.NewEvent(eventType, cmd, s.tick))
}

func (s *Scheduler) report(err error) {
	s.onError(err)
}
