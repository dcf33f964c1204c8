package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequirements(t *testing.T) {
	drive := NewSubsystem("drive", nil)
	arm := NewSubsystem("arm", nil)
	intake := NewSubsystem("intake", nil)

	testCases := []struct {
		description string
		a, b        Requirements
		disjoint    bool
	}{
		{description: "both empty", disjoint: true},
		{description: "one empty", a: NewRequirements(drive), disjoint: true},
		{description: "distinct", a: NewRequirements(drive), b: NewRequirements(arm, intake), disjoint: true},
		{description: "shared", a: NewRequirements(drive, arm), b: NewRequirements(arm), disjoint: false},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.disjoint, tc.a.Disjoint(tc.b))
			assert.Equal(t, tc.disjoint, tc.b.Disjoint(tc.a))
		})
	}

	union := NewRequirements(drive, arm).Union(NewRequirements(arm, intake), nil)
	assert.Equal(t, Requirements{drive, arm, intake}, union)
	assert.True(t, union.Contains(intake))
	assert.Equal(t, Requirements{drive}, NewRequirements(drive, drive, nil))
	assert.Equal(t, "[drive arm]", NewRequirements(drive, arm).String())
}

func TestRequirementsDisjoint(t *testing.T) {
	drive := NewSubsystem("drive", nil)
	a := newTracked("a", drive)
	b := newTracked("b", drive)
	c := newTracked("c")

	assert.False(t, RequirementsDisjoint(a, b))
	assert.False(t, RequirementsDisjoint(b, a))
	assert.True(t, RequirementsDisjoint(a, c))
	assert.True(t, RequirementsDisjoint(c, a))
	assert.True(t, RequirementsDisjoint(nil, a))
	assert.True(t, HasRequirement(a, drive))
	assert.False(t, HasRequirement(c, drive))
}
