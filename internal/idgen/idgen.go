package idgen

import "github.com/google/uuid"

// NewFunc returns a new globally unique identifier. Tests may replace it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new command identifier.
func New() string { return NewFunc() }

// Short returns the first eight characters of id, used in default names.
func Short(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
