package routine

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/viant/arbiter/command"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnknownCondition = errors.New("unknown condition")
)

// Factory returns a fresh command handle each time it is called. Built
// routines own their commands, so a factory must never hand out the same
// instance twice.
type Factory func() *command.Ptr

// Registry resolves command and condition names used by routines.
type Registry struct {
	mux        sync.RWMutex
	commands   map[string]Factory
	conditions map[string]func() bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands:   make(map[string]Factory),
		conditions: make(map[string]func() bool),
	}
}

// Register adds or replaces a named command factory.
func (r *Registry) Register(name string, factory Factory) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.commands[name] = factory
}

// RegisterCondition adds or replaces a named condition.
func (r *Registry) RegisterCondition(name string, condition func() bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.conditions[name] = condition
}

// Commands returns the registered command names in sorted order.
func (r *Registry) Commands() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return slices.Sorted(maps.Keys(r.commands))
}

// Conditions returns the registered condition names in sorted order.
func (r *Registry) Conditions() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return slices.Sorted(maps.Keys(r.conditions))
}

func (r *Registry) factory(name string) (Factory, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret, ok := r.commands[name]
	return ret, ok
}

func (r *Registry) condition(name string) (func() bool, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret, ok := r.conditions[name]
	return ret, ok
}

// Check reports every command or condition referenced by routine that the
// registry cannot resolve.
func (r *Registry) Check(routine *Routine) []error {
	var issues []error
	routine.Root.Walk(func(step *Step) {
		if step.Kind == KindCommand {
			if _, ok := r.factory(step.Command); !ok {
				issues = append(issues, fmt.Errorf("%s: %w %q", step.Path, ErrUnknownCommand, step.Command))
			}
		}
		for _, name := range step.Conditions() {
			if _, ok := r.condition(name); !ok {
				issues = append(issues, fmt.Errorf("%s: %w %q", step.Path, ErrUnknownCondition, name))
			}
		}
	})
	return issues
}

// Build assembles routine into a single command handle named after the
// routine.
func (r *Registry) Build(routine *Routine) *command.Ptr {
	if routine == nil || routine.Root == nil {
		return command.Fail(fmt.Errorf("routine is empty"))
	}
	if issues := r.Check(routine); len(issues) > 0 {
		return command.Fail(issues[0])
	}
	ret := r.build(routine.Root)
	if routine.Root.Name == "" && routine.Name != "" {
		ret = ret.WithName(routine.Name)
	}
	return ret
}

func (r *Registry) build(step *Step) *command.Ptr {
	var ret *command.Ptr
	switch step.Kind {
	case KindCommand:
		factory, _ := r.factory(step.Command)
		if ret = factory(); ret == nil {
			ret = command.Fail(fmt.Errorf("%s: factory %q returned nil: %w", step.Path, step.Command, command.ErrNilCommand))
		}
	case KindWait:
		ret = command.Own(command.NewWait(step.Wait))
	case KindWaitUntil:
		condition, _ := r.condition(step.WaitUntil)
		ret = command.Own(command.NewWaitUntil(condition))
	case KindSequence:
		ret = r.composeSteps(step.Steps, (*command.Ptr).Then)
	case KindParallel:
		ret = r.composeSteps(step.Steps, (*command.Ptr).AlongWith)
	case KindRace:
		ret = r.composeSteps(step.Steps, (*command.Ptr).RaceWith)
	case KindDeadline:
		ret = r.composeSteps(step.Steps, (*command.Ptr).DeadlineWith)
	case KindRepeat:
		ret = r.build(step.Inner).Repeatedly()
	case KindProxy:
		ret = r.build(step.Inner).AsProxy()
	case KindEither:
		ret = r.buildEither(step.Either)
	default:
		return command.Fail(fmt.Errorf("%s: unsupported step kind %q", step.Path, step.Kind))
	}
	return r.decorate(ret, step)
}

func (r *Registry) composeSteps(steps []*Step, compose func(first *command.Ptr, others ...*command.Ptr) *command.Ptr) *command.Ptr {
	handles := make([]*command.Ptr, 0, len(steps))
	for _, child := range steps {
		handles = append(handles, r.build(child))
	}
	return compose(handles[0], handles[1:]...)
}

func (r *Registry) buildEither(branch *Branch) *command.Ptr {
	onTrue, err := r.build(branch.Then).Unwrap()
	if err != nil {
		return command.Fail(err)
	}
	var onFalse command.Command = command.None()
	if branch.Else != nil {
		if onFalse, err = r.build(branch.Else).Unwrap(); err != nil {
			return command.Fail(err)
		}
	}
	condition, _ := r.condition(branch.If)
	either, err := command.NewEither(onTrue, onFalse, condition)
	if err != nil {
		return command.Fail(err)
	}
	return command.Own(either)
}

// decorate applies step modifiers from the innermost outwards.
func (r *Registry) decorate(ret *command.Ptr, step *Step) *command.Ptr {
	if step.Timeout > 0 {
		ret = ret.WithTimeout(step.Timeout)
	}
	if step.Until != "" {
		condition, _ := r.condition(step.Until)
		ret = ret.Until(condition)
	}
	if step.OnlyIf != "" {
		condition, _ := r.condition(step.OnlyIf)
		ret = ret.OnlyIf(condition)
	}
	if step.Unless != "" {
		condition, _ := r.condition(step.Unless)
		ret = ret.Unless(condition)
	}
	if step.Perpetually {
		ret = ret.Perpetually()
	}
	if step.InterruptBehavior == "cancelIncoming" {
		ret = ret.WithInterruptBehavior(command.CancelIncoming)
	}
	if step.IgnoringDisable != nil {
		ret = ret.IgnoringDisable(*step.IgnoringDisable)
	}
	if step.Name != "" {
		ret = ret.WithName(step.Name)
	}
	return ret
}
