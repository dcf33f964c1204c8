package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/arbiter/internal/clock"
)

func TestWait(t *testing.T) {
	manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	defer manual.Install()()

	wait := NewWait(time.Second)
	assert.Equal(t, "wait(1s)", wait.Name())
	assert.True(t, wait.RunsWhenDisabled())
	wait.Initialize(context.Background())
	assert.False(t, wait.IsFinished())
	manual.Advance(999 * time.Millisecond)
	assert.False(t, wait.IsFinished())
	manual.Advance(time.Millisecond)
	assert.True(t, wait.IsFinished())

	wait.Initialize(context.Background())
	assert.False(t, wait.IsFinished())
}

func TestWaitUntil(t *testing.T) {
	ready := false
	wait := NewWaitUntil(func() bool { return ready })
	assert.False(t, wait.IsFinished())
	ready = true
	assert.True(t, wait.IsFinished())
}
