package command

import "errors"

var (
	ErrNilCommand              = errors.New("command is nil")
	ErrAlreadyGrouped          = errors.New("command already belongs to a composition")
	ErrOverlappingRequirements = errors.New("parallel composition requires disjoint requirements")
	ErrMoved                   = errors.New("command ownership already transferred")
)
