package routine

import (
	"fmt"
	"time"
)

// Kind identifies the body of a step.
type Kind string

const (
	KindCommand   Kind = "command"
	KindWait      Kind = "wait"
	KindWaitUntil Kind = "waitUntil"
	KindSequence  Kind = "sequence"
	KindParallel  Kind = "parallel"
	KindRace      Kind = "race"
	KindDeadline  Kind = "deadline"
	KindRepeat    Kind = "repeat"
	KindProxy     Kind = "proxy"
	KindEither    Kind = "either"
)

// Source describes where a routine was loaded from.
type Source struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Routine is a named, declarative command composition.
type Routine struct {
	Source      *Source `json:"source,omitempty" yaml:"source,omitempty"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Root        *Step   `json:"routine,omitempty" yaml:"routine,omitempty"`
}

// Branch selects between two steps on a named condition evaluated when the
// step starts.
type Branch struct {
	If   string `json:"if" yaml:"if"`
	Then *Step  `json:"then" yaml:"then"`
	Else *Step  `json:"else,omitempty" yaml:"else,omitempty"`
}

// Step is one node of a routine.
type Step struct {
	// Path locates the step inside its routine, e.g. "auto/sequence[2]".
	Path string `json:"path,omitempty" yaml:"-"`
	Kind Kind   `json:"kind" yaml:"-"`

	Command   string        `json:"command,omitempty" yaml:"command,omitempty"`
	Wait      time.Duration `json:"wait,omitempty" yaml:"wait,omitempty"`
	WaitUntil string        `json:"waitUntil,omitempty" yaml:"waitUntil,omitempty"`
	Steps     []*Step       `json:"steps,omitempty" yaml:"steps,omitempty"`
	Inner     *Step         `json:"inner,omitempty" yaml:"inner,omitempty"`
	Either    *Branch       `json:"either,omitempty" yaml:"either,omitempty"`

	Name              string        `json:"name,omitempty" yaml:"name,omitempty"`
	Timeout           time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Until             string        `json:"until,omitempty" yaml:"until,omitempty"`
	Unless            string        `json:"unless,omitempty" yaml:"unless,omitempty"`
	OnlyIf            string        `json:"onlyIf,omitempty" yaml:"onlyIf,omitempty"`
	IgnoringDisable   *bool         `json:"ignoringDisable,omitempty" yaml:"ignoringDisable,omitempty"`
	InterruptBehavior string        `json:"interruptBehavior,omitempty" yaml:"interruptBehavior,omitempty"`
	Perpetually       bool          `json:"perpetually,omitempty" yaml:"perpetually,omitempty"`
}

// Walk visits step and every nested step depth first.
func (s *Step) Walk(visit func(step *Step)) {
	if s == nil {
		return
	}
	visit(s)
	for _, child := range s.Steps {
		child.Walk(visit)
	}
	s.Inner.Walk(visit)
	if s.Either != nil {
		s.Either.Then.Walk(visit)
		s.Either.Else.Walk(visit)
	}
}

// Conditions returns the condition names referenced by the step.
func (s *Step) Conditions() []string {
	var ret []string
	for _, name := range []string{s.WaitUntil, s.Until, s.Unless, s.OnlyIf} {
		if name != "" {
			ret = append(ret, name)
		}
	}
	if s.Either != nil && s.Either.If != "" {
		ret = append(ret, s.Either.If)
	}
	return ret
}

// Validate performs structural validation and returns every issue found.
func (r *Routine) Validate() []error {
	var issues []error
	if r.Root == nil {
		return append(issues, fmt.Errorf("routine %s: missing root step", r.Name))
	}
	r.Root.Walk(func(step *Step) {
		if step == nil {
			return
		}
		switch step.Kind {
		case "":
			issues = append(issues, fmt.Errorf("%s: step has no body", step.Path))
		case KindCommand:
			if step.Command == "" {
				issues = append(issues, fmt.Errorf("%s: empty command name", step.Path))
			}
		case KindWait:
			if step.Wait < 0 {
				issues = append(issues, fmt.Errorf("%s: negative wait %s", step.Path, step.Wait))
			}
		case KindSequence, KindParallel, KindRace, KindDeadline:
			if len(step.Steps) == 0 {
				issues = append(issues, fmt.Errorf("%s: %s needs at least one step", step.Path, step.Kind))
			}
			for i, child := range step.Steps {
				if child == nil {
					issues = append(issues, fmt.Errorf("%s: %s[%d] is empty", step.Path, step.Kind, i))
				}
			}
		case KindRepeat, KindProxy:
			if step.Inner == nil {
				issues = append(issues, fmt.Errorf("%s: %s needs a step", step.Path, step.Kind))
			}
		case KindEither:
			if step.Either == nil || step.Either.If == "" || step.Either.Then == nil {
				issues = append(issues, fmt.Errorf("%s: either needs if and then", step.Path))
			}
		}
		if step.Timeout < 0 {
			issues = append(issues, fmt.Errorf("%s: negative timeout %s", step.Path, step.Timeout))
		}
		switch step.InterruptBehavior {
		case "", "cancelSelf", "cancelIncoming":
		default:
			issues = append(issues, fmt.Errorf("%s: unknown interruptBehavior %q", step.Path, step.InterruptBehavior))
		}
	})
	return issues
}
