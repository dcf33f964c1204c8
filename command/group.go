package command

import "fmt"

// adopt transfers ownership of children to a composition. Validation happens
// before any child is marked so a failed composition leaves them untouched.
func adopt(children ...Command) error {
	seen := make(map[Command]bool, len(children))
	for _, child := range children {
		if child == nil {
			return ErrNilCommand
		}
		if child.IsGrouped() || seen[child] {
			return fmt.Errorf("%w: %s", ErrAlreadyGrouped, child.Name())
		}
		seen[child] = true
	}
	for _, child := range children {
		child.SetGrouped(true)
	}
	return nil
}

// ensureDisjoint rejects children whose requirements overlap.
func ensureDisjoint(children ...Command) error {
	var claimed Requirements
	for _, child := range children {
		if child == nil {
			return ErrNilCommand
		}
		requirements := child.Requirements()
		if !requirements.Disjoint(claimed) {
			return fmt.Errorf("%w: %s requires %v, already claimed %v", ErrOverlappingRequirements, child.Name(), requirements, claimed)
		}
		claimed = claimed.Union(requirements)
	}
	return nil
}

// groupTraits derives the combined requirements and policies of children.
// A group runs when disabled only if every child does, and cancels incoming
// commands if any child does.
func groupTraits(children []Command) (Requirements, InterruptionBehavior, bool) {
	var requirements Requirements
	behavior := CancelSelf
	runsWhenDisabled := true
	for _, child := range children {
		requirements = requirements.Union(child.Requirements())
		if child.InterruptionBehavior() == CancelIncoming {
			behavior = CancelIncoming
		}
		runsWhenDisabled = runsWhenDisabled && child.RunsWhenDisabled()
	}
	return requirements, behavior, runsWhenDisabled
}

// group holds the shared state of multi-child compositions.
type group struct {
	Base
	commands         []Command
	behavior         InterruptionBehavior
	runsWhenDisabled bool
}

func newGroup(name string, commands []Command) group {
	requirements, behavior, runsWhenDisabled := groupTraits(commands)
	ret := group{commands: commands, behavior: behavior, runsWhenDisabled: runsWhenDisabled}
	ret.SetName(name)
	ret.AddRequirements(requirements...)
	return ret
}

// Commands returns the children in declared order.
func (g *group) Commands() []Command { return g.commands }

func (g *group) InterruptionBehavior() InterruptionBehavior { return g.behavior }

func (g *group) RunsWhenDisabled() bool { return g.runsWhenDisabled }
