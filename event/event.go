package event

import (
	"time"

	"github.com/viant/arbiter/command"
	"github.com/viant/arbiter/internal/clock"
)

// Type identifies a command lifecycle transition.
type Type string

const (
	Initialize Type = "initialize"
	Execute    Type = "execute"
	Interrupt  Type = "interrupt"
	Finish     Type = "finish"
)

// Context describes the command an event refers to.
type Context struct {
	CommandID    string   `json:"commandID"`
	Command      string   `json:"command"`
	Requirements []string `json:"requirements,omitempty"`
	Tick         uint64   `json:"tick"`
}

// Event is a lifecycle notification emitted by the scheduler.
type Event struct {
	Type      Type            `json:"type"`
	Context   *Context        `json:"context"`
	CreatedAt time.Time       `json:"createdAt"`
	Command   command.Command `json:"-"`
}

// NewEvent returns an event of eventType for cmd observed at tick.
func NewEvent(eventType Type, cmd command.Command, tick uint64) *Event {
	requirements := cmd.Requirements()
	names := make([]string, 0, len(requirements))
	for _, subsystem := range requirements {
		names = append(names, subsystem.Name())
	}
	return &Event{
		Type: eventType,
		Context: &Context{
			CommandID:    cmd.ID(),
			Command:      cmd.Name(),
			Requirements: names,
			Tick:         tick,
		},
		CreatedAt: clock.Now(),
		Command:   cmd,
	}
}
