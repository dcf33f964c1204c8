package command

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"maps"
	"slices"
)

// Either runs onTrue or onFalse depending on condition, evaluated on
// Initialize. It requires the union of both branches.
type Either struct {
	group
	onTrue, onFalse Command
	condition       func() bool
	selected        Command
}

// NewEither takes ownership of both branches.
func NewEither(onTrue, onFalse Command, condition func() bool) (*Either, error) {
	if condition == nil {
		return nil, fmt.Errorf("either: condition was nil")
	}
	if err := adopt(onTrue, onFalse); err != nil {
		return nil, err
	}
	return &Either{
		group:     newGroup("either", []Command{onTrue, onFalse}),
		onTrue:    onTrue,
		onFalse:   onFalse,
		condition: condition,
	}, nil
}

func (e *Either) Initialize(ctx context.Context) {
	if e.condition() {
		e.selected = e.onTrue
	} else {
		e.selected = e.onFalse
	}
	e.selected.Initialize(ctx)
}

func (e *Either) Execute(ctx context.Context) {
	if e.selected != nil {
		e.selected.Execute(ctx)
	}
}

func (e *Either) IsFinished() bool {
	return e.selected == nil || e.selected.IsFinished()
}

func (e *Either) End(ctx context.Context, interrupted bool) {
	if e.selected != nil {
		e.selected.End(ctx, interrupted)
	}
	e.selected = nil
}

// Select runs the command registered under the key returned by selector on
// Initialize. An unknown key runs a command that finishes immediately.
type Select[K cmp.Ordered] struct {
	group
	commands map[K]Command
	selector func() K
	selected Command
}

// NewSelect takes ownership of every command in commands.
func NewSelect[K cmp.Ordered](selector func() K, commands map[K]Command) (*Select[K], error) {
	if selector == nil {
		return nil, fmt.Errorf("select: selector was nil")
	}
	ordered := make([]Command, 0, len(commands))
	for _, key := range slices.Sorted(maps.Keys(commands)) {
		ordered = append(ordered, commands[key])
	}
	if err := adopt(ordered...); err != nil {
		return nil, err
	}
	return &Select[K]{group: newGroup("select", ordered), commands: maps.Clone(commands), selector: selector}, nil
}

func (s *Select[K]) Initialize(ctx context.Context) {
	key := s.selector()
	selected, ok := s.commands[key]
	if !ok {
		log.Printf("select: no command registered for key %v", key)
		selected = None()
	}
	s.selected = selected
	s.selected.Initialize(ctx)
}

func (s *Select[K]) Execute(ctx context.Context) {
	if s.selected != nil {
		s.selected.Execute(ctx)
	}
}

func (s *Select[K]) IsFinished() bool {
	return s.selected == nil || s.selected.IsFinished()
}

func (s *Select[K]) End(ctx context.Context, interrupted bool) {
	if s.selected != nil {
		s.selected.End(ctx, interrupted)
	}
	s.selected = nil
}
