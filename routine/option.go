package routine

import "github.com/viant/afs"

type Option func(*Service)

// WithFS sets the file system used to read and store routines.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithBaseURL sets the location relative routine URLs resolve against.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}

// WithRegistry sets the command and condition registry.
func WithRegistry(registry *Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}
