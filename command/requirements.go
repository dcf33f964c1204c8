package command

import "strings"

// Requirements is an insertion-ordered set of subsystems.
type Requirements []Subsystem

// NewRequirements returns a set holding the non-nil, distinct subsystems.
func NewRequirements(subsystems ...Subsystem) Requirements {
	return Requirements(nil).With(subsystems...)
}

// Contains reports whether subsystem is a member.
func (r Requirements) Contains(subsystem Subsystem) bool {
	if subsystem == nil {
		return false
	}
	for _, candidate := range r {
		if candidate == subsystem {
			return true
		}
	}
	return false
}

// With returns a copy of r extended by subsystems not yet present.
func (r Requirements) With(subsystems ...Subsystem) Requirements {
	ret := make(Requirements, 0, len(r)+len(subsystems))
	ret = append(ret, r...)
	for _, subsystem := range subsystems {
		if subsystem == nil || ret.Contains(subsystem) {
			continue
		}
		ret = append(ret, subsystem)
	}
	return ret
}

// Union returns r extended by every member of others.
func (r Requirements) Union(others ...Requirements) Requirements {
	ret := r.With()
	for _, other := range others {
		ret = ret.With(other...)
	}
	return ret
}

// Disjoint reports whether r and other have no member in common.
func (r Requirements) Disjoint(other Requirements) bool {
	for _, subsystem := range r {
		if other.Contains(subsystem) {
			return false
		}
	}
	return true
}

// String renders the subsystem names, e.g. "[drive arm]".
func (r Requirements) String() string {
	names := make([]string, 0, len(r))
	for _, subsystem := range r {
		names = append(names, subsystem.Name())
	}
	return "[" + strings.Join(names, " ") + "]"
}
