package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_Errors(t *testing.T) {
	drive := NewSubsystem("drive", nil)
	arm := NewSubsystem("arm", nil)

	testCases := []struct {
		description string
		compose     func(children ...Command) (Command, error)
		children    func() []Command
		expect      error
	}{
		{
			description: "parallel overlapping",
			compose:     func(c ...Command) (Command, error) { return NewParallel(c...) },
			children:    func() []Command { return []Command{newTracked("a", drive), newTracked("b", drive, arm)} },
			expect:      ErrOverlappingRequirements,
		},
		{
			description: "race overlapping",
			compose:     func(c ...Command) (Command, error) { return NewRace(c...) },
			children:    func() []Command { return []Command{newTracked("a", arm), newTracked("b", arm)} },
			expect:      ErrOverlappingRequirements,
		},
		{
			description: "deadline overlapping",
			compose:     func(c ...Command) (Command, error) { return NewDeadline(c[0], c[1:]...) },
			children:    func() []Command { return []Command{newTracked("a", drive), newTracked("b", drive)} },
			expect:      ErrOverlappingRequirements,
		},
		{
			description: "sequential nil child",
			compose:     func(c ...Command) (Command, error) { return NewSequential(c...) },
			children:    func() []Command { return []Command{newTracked("a"), nil} },
			expect:      ErrNilCommand,
		},
		{
			description: "sequential duplicate child",
			compose:     func(c ...Command) (Command, error) { return NewSequential(c...) },
			children: func() []Command {
				a := newTracked("a")
				return []Command{newTracked("b"), a, a}
			},
			expect: ErrAlreadyGrouped,
		},
		{
			description: "sequential grouped child",
			compose:     func(c ...Command) (Command, error) { return NewSequential(c...) },
			children: func() []Command {
				a := newTracked("a")
				a.SetGrouped(true)
				return []Command{newTracked("b"), a}
			},
			expect: ErrAlreadyGrouped,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			children := tc.children()
			_, err := tc.compose(children...)
			require.ErrorIs(t, err, tc.expect)
			if tc.expect == ErrOverlappingRequirements {
				for _, child := range children {
					assert.False(t, child.IsGrouped(), child.Name())
				}
			}
			if tc.expect == ErrAlreadyGrouped || tc.expect == ErrNilCommand {
				assert.False(t, children[0].IsGrouped())
			}
		})
	}
}

func TestCompose_Traits(t *testing.T) {
	drive := NewSubsystem("drive", nil)
	arm := NewSubsystem("arm", nil)

	a := newTracked("a", drive)
	a.runsWhenDisabled = true
	b := newTracked("b", arm, drive)
	b.behavior = CancelIncoming
	seq, err := NewSequential(a, b)
	require.NoError(t, err)
	assert.Equal(t, Requirements{drive, arm}, seq.Requirements())
	assert.Equal(t, CancelIncoming, seq.InterruptionBehavior())
	assert.False(t, seq.RunsWhenDisabled())
	assert.True(t, a.IsGrouped())
	assert.True(t, b.IsGrouped())
	assert.Equal(t, []Command{a, b}, seq.Commands())

	c := newTracked("c", drive)
	c.runsWhenDisabled = true
	d := newTracked("d", arm)
	d.runsWhenDisabled = true
	parallel, err := NewParallel(c, d)
	require.NoError(t, err)
	assert.Equal(t, CancelSelf, parallel.InterruptionBehavior())
	assert.True(t, parallel.RunsWhenDisabled())
}

func TestSequential_Lifecycle(t *testing.T) {
	ctx := context.Background()

	empty, err := NewSequential()
	require.NoError(t, err)
	assert.False(t, empty.IsFinished())
	empty.Initialize(ctx)
	assert.True(t, empty.IsFinished())

	a := newTracked("a")
	b := newTracked("b")
	seq, err := NewSequential(a, b)
	require.NoError(t, err)
	seq.Initialize(ctx)
	a.finished = true
	seq.Execute(ctx)
	assert.Equal(t, []bool{false}, a.ends)
	assert.Equal(t, 1, b.inits)
	assert.Zero(t, b.execs)
	assert.False(t, seq.IsFinished())

	seq.End(ctx, true)
	assert.Equal(t, []bool{true}, b.ends)
	assert.Equal(t, []bool{false}, a.ends)

	seq.Initialize(ctx)
	assert.Equal(t, 2, a.inits)
}

func TestRace_Lifecycle(t *testing.T) {
	ctx := context.Background()
	a := newTracked("a")
	b := newTracked("b")
	c := newTracked("c")
	race, err := NewRace(a, b, c)
	require.NoError(t, err)

	race.Initialize(ctx)
	race.Execute(ctx)
	assert.False(t, race.IsFinished())
	b.finished = true
	c.finished = true
	race.Execute(ctx)
	assert.True(t, race.IsFinished())
	race.End(ctx, false)
	assert.Equal(t, []bool{true}, a.ends)
	assert.Equal(t, []bool{false}, b.ends)
	assert.Equal(t, []bool{false}, c.ends)
}

func TestRepeat_Lifecycle(t *testing.T) {
	ctx := context.Background()
	a := newTracked("a", NewSubsystem("drive", nil))
	a.behavior = CancelIncoming
	repeat, err := NewRepeat(a)
	require.NoError(t, err)
	assert.Equal(t, "repeat(a)", repeat.Name())
	assert.Equal(t, a.Requirements(), repeat.Requirements())
	assert.Equal(t, CancelIncoming, repeat.InterruptionBehavior())

	repeat.Initialize(ctx)
	a.finished = true
	repeat.Execute(ctx)
	assert.False(t, repeat.IsFinished())
	assert.Equal(t, 2, a.inits)
	assert.Equal(t, []bool{false}, a.ends)

	repeat.End(ctx, true)
	assert.Equal(t, []bool{false, true}, a.ends)
}

func TestProxy_WithoutScheduler(t *testing.T) {
	target := newTracked("target")
	proxy, err := NewProxy(target)
	require.NoError(t, err)
	assert.Equal(t, "proxy(target)", proxy.Name())

	proxy.Initialize(context.Background())
	assert.True(t, proxy.IsFinished())
	assert.Zero(t, target.inits)

	_, err = NewProxy(nil)
	assert.ErrorIs(t, err, ErrNilCommand)
}
