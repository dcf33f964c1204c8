package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/arbiter/command"
	"github.com/viant/arbiter/internal/clock"
)

func TestScheduler_Sequential(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := newProbe(f.journal, "A", f.drive)
	b := newProbe(f.journal, "B", f.arm)
	seq, err := command.NewSequential(a, b)
	require.NoError(t, err)

	f.sched.Schedule(seq)
	f.sched.Run(ctx)
	assert.Same(t, seq, f.sched.Requiring(f.drive))
	assert.Same(t, seq, f.sched.Requiring(f.arm))

	f.journal.reset()
	a.finished = true
	f.sched.Run(ctx)
	assert.Equal(t, []string{"A.exec", "A.end(false)", "B.init"}, f.journal.entries)
	assert.Zero(t, b.execs)

	b.finished = true
	f.sched.Run(ctx)
	assert.False(t, f.sched.IsScheduled(seq))
	assert.Equal(t, []bool{false}, a.ends)
	assert.Equal(t, []bool{false}, b.ends)
	assert.Equal(t, 1, b.execs)
}

func TestScheduler_Sequential_Interrupted(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := newProbe(f.journal, "A", f.drive)
	b := newProbe(f.journal, "B", f.arm)
	seq, err := command.NewSequential(a, b)
	require.NoError(t, err)
	f.sched.Schedule(seq)
	f.sched.Run(ctx)

	incoming := newProbe(f.journal, "incoming", f.arm)
	f.sched.Schedule(incoming)
	f.sched.Run(ctx)

	assert.False(t, f.sched.IsScheduled(seq))
	assert.True(t, f.sched.IsScheduled(incoming))
	assert.Equal(t, []bool{true}, a.ends)
	assert.Empty(t, b.ends)
	assert.Nil(t, f.sched.Requiring(f.drive))
}

func TestScheduler_Parallel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := newProbe(f.journal, "A", f.drive)
	b := newProbe(f.journal, "B", f.arm)
	parallel, err := command.NewParallel(a, b)
	require.NoError(t, err)

	f.sched.Schedule(parallel)
	a.finished = true
	f.sched.Run(ctx)
	f.sched.Run(ctx)
	assert.True(t, f.sched.IsScheduled(parallel))
	assert.Equal(t, 1, a.execs)
	assert.Equal(t, 2, b.execs)

	f.sched.Cancel(parallel)
	assert.Equal(t, []bool{false}, a.ends)
	assert.Equal(t, []bool{true}, b.ends)
}

func TestScheduler_Race(t *testing.T) {
	f := newFixture()
	a := newProbe(f.journal, "A", f.drive)
	b := newProbe(f.journal, "B", f.arm)
	a.finished = true
	race, err := command.NewRace(a, b)
	require.NoError(t, err)

	f.sched.Schedule(race)
	f.sched.Run(context.Background())

	assert.False(t, f.sched.IsScheduled(race))
	assert.Equal(t, []bool{false}, a.ends)
	assert.Equal(t, []bool{true}, b.ends)
}

func TestScheduler_Deadline(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	leader := newProbe(f.journal, "leader", f.drive)
	follower := newProbe(f.journal, "follower", f.arm)
	deadline, err := command.NewDeadline(leader, follower)
	require.NoError(t, err)

	f.sched.Schedule(deadline)
	follower.finished = true
	f.sched.Run(ctx)
	f.sched.Run(ctx)
	assert.True(t, f.sched.IsScheduled(deadline))
	assert.Equal(t, 1, follower.execs)
	assert.Equal(t, []bool{false}, follower.ends)

	leader.finished = true
	f.sched.Run(ctx)
	assert.False(t, f.sched.IsScheduled(deadline))
	assert.Equal(t, []bool{false}, leader.ends)
	assert.Equal(t, []bool{false}, follower.ends)

	f.journal.reset()
	leader.finished = false
	follower.finished = false
	f.sched.Schedule(deadline)
	f.sched.Run(ctx)
	leader.finished = true
	f.sched.Run(ctx)
	assert.Equal(t, []bool{false, true}, follower.ends)
}

func TestScheduler_Repeat(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := newProbe(f.journal, "A", f.drive)
	a.finished = true
	repeat, err := command.NewRepeat(a)
	require.NoError(t, err)

	f.sched.Schedule(repeat)
	f.sched.Run(ctx)
	f.sched.Run(ctx)

	assert.True(t, f.sched.IsScheduled(repeat))
	assert.Equal(t, []string{
		"A.init", "A.exec", "A.end(false)", "A.init",
		"A.exec", "A.end(false)", "A.init",
	}, f.journal.entries)
}

func TestScheduler_Proxy(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	target := newProbe(f.journal, "target", f.drive)
	proxy, err := command.NewProxy(target)
	require.NoError(t, err)
	assert.Empty(t, proxy.Requirements())
	assert.False(t, target.IsGrouped())

	f.sched.Schedule(proxy)
	f.sched.Run(ctx)
	assert.True(t, f.sched.IsScheduled(target))
	assert.Same(t, target, f.sched.Requiring(f.drive))
	assert.Equal(t, 1, target.execs)

	target.finished = true
	f.sched.Run(ctx)
	assert.False(t, f.sched.IsScheduled(target))
	assert.True(t, f.sched.IsScheduled(proxy))
	f.sched.Run(ctx)
	assert.False(t, f.sched.IsScheduled(proxy))
	assert.Equal(t, []bool{false}, target.ends)
}

func TestScheduler_Proxy_Interrupted(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	target := newProbe(f.journal, "target", f.drive)
	other := newProbe(f.journal, "other", f.arm)
	proxy, err := command.Own(target).AsProxy().Unwrap()
	require.NoError(t, err)
	seq, err := command.NewSequential(proxy, other)
	require.NoError(t, err)

	f.sched.Schedule(seq)
	f.sched.Run(ctx)
	assert.True(t, f.sched.IsScheduled(target))
	assert.Same(t, target, f.sched.Requiring(f.drive))
	assert.Same(t, seq, f.sched.Requiring(f.arm))

	f.sched.Cancel(seq)
	assert.False(t, f.sched.IsScheduled(target))
	assert.Equal(t, []bool{true}, target.ends)
	assert.Zero(t, other.inits)
}

func TestScheduler_Decorators(t *testing.T) {
	manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	defer manual.Install()()

	f := newFixture()
	ctx := context.Background()
	a := newProbe(f.journal, "A", f.drive)
	var cleanup []bool
	handle := command.Own(a).
		WithTimeout(100 * time.Millisecond).
		FinallyDo(func(ctx context.Context, interrupted bool) { cleanup = append(cleanup, interrupted) }).
		WithName("timed")
	require.NoError(t, handle.Err())
	assert.Equal(t, "timed", handle.Name())

	cmd, err := handle.Unwrap()
	require.NoError(t, err)
	f.sched.Schedule(cmd)
	f.sched.Run(ctx)
	assert.True(t, f.sched.IsScheduled(cmd))

	manual.Advance(100 * time.Millisecond)
	f.sched.Run(ctx)
	assert.False(t, f.sched.IsScheduled(cmd))
	assert.Equal(t, []bool{true}, a.ends)
	assert.Equal(t, []bool{false}, cleanup)
}

func TestScheduler_Decorators_Behavior(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	holder, err := command.Own(newProbe(f.journal, "holder", f.drive)).
		WithInterruptBehavior(command.CancelIncoming).
		IgnoringDisable(true).
		Unwrap()
	require.NoError(t, err)

	f.sched.Schedule(holder)
	f.sched.Run(ctx)
	f.sched.Disable()
	incoming := newProbe(f.journal, "incoming", f.drive)
	incoming.runsWhenDisabled = true
	f.sched.Schedule(incoming)
	f.sched.Run(ctx)

	assert.True(t, f.sched.IsScheduled(holder))
	assert.Zero(t, incoming.inits)
	assert.Same(t, holder, f.sched.Requiring(f.drive))
}
