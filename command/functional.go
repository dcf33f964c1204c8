package command

import "context"

// Functional is a command assembled from callbacks. Nil callbacks are skipped;
// a nil isFinished never finishes.
type Functional struct {
	Base
	onInit     func(ctx context.Context)
	onExecute  func(ctx context.Context)
	onEnd      func(ctx context.Context, interrupted bool)
	isFinished func() bool
}

// NewFunctional returns a command running the supplied callbacks.
func NewFunctional(onInit, onExecute func(ctx context.Context), onEnd func(ctx context.Context, interrupted bool), isFinished func() bool, requirements ...Subsystem) *Functional {
	ret := &Functional{onInit: onInit, onExecute: onExecute, onEnd: onEnd, isFinished: isFinished}
	ret.AddRequirements(requirements...)
	return ret
}

// NewInstant returns a command that runs fn once on Initialize and finishes
// on the same tick.
func NewInstant(fn func(ctx context.Context), requirements ...Subsystem) *Functional {
	return NewFunctional(fn, nil, nil, func() bool { return true }, requirements...)
}

// NewRun returns a command that runs fn on every tick and never finishes.
func NewRun(fn func(ctx context.Context), requirements ...Subsystem) *Functional {
	return NewFunctional(nil, fn, nil, nil, requirements...)
}

// NewStartEnd returns a command running start on Initialize and end on End.
func NewStartEnd(start, end func(ctx context.Context), requirements ...Subsystem) *Functional {
	return NewFunctional(start, nil, func(ctx context.Context, _ bool) {
		if end != nil {
			end(ctx)
		}
	}, nil, requirements...)
}

// NewRunEnd returns a command running run every tick and end on End.
func NewRunEnd(run, end func(ctx context.Context), requirements ...Subsystem) *Functional {
	return NewFunctional(nil, run, func(ctx context.Context, _ bool) {
		if end != nil {
			end(ctx)
		}
	}, nil, requirements...)
}

// None returns a command that does nothing and finishes immediately.
func None() *Functional {
	ret := NewInstant(nil)
	ret.SetName("none")
	return ret
}

func (f *Functional) Initialize(ctx context.Context) {
	if f.onInit != nil {
		f.onInit(ctx)
	}
}

func (f *Functional) Execute(ctx context.Context) {
	if f.onExecute != nil {
		f.onExecute(ctx)
	}
}

func (f *Functional) IsFinished() bool {
	if f.isFinished == nil {
		return false
	}
	return f.isFinished()
}

func (f *Functional) End(ctx context.Context, interrupted bool) {
	if f.onEnd != nil {
		f.onEnd(ctx, interrupted)
	}
}
