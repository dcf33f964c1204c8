package routine

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/arbiter/command"
)

// Service loads routines through afs and caches them by location.
type Service struct {
	fs       afs.Service
	baseURL  string
	registry *Registry
	mux      sync.RWMutex
	cache    map[string]*Routine
}

// Registry returns the registry used to build routines.
func (s *Service) Registry() *Registry { return s.registry }

// Location resolves URL against the base URL and appends the .yaml
// extension when URL has none.
func (s *Service) Location(URL string) string {
	if path.Ext(URL) == "" {
		URL += ".yaml"
	}
	if s.baseURL != "" && !strings.Contains(URL, "://") && !strings.HasPrefix(URL, "/") {
		URL = url.Join(s.baseURL, URL)
	}
	return URL
}

// Load returns the routine at URL, reading it on first use.
func (s *Service) Load(ctx context.Context, URL string) (*Routine, error) {
	location := s.Location(URL)
	s.mux.RLock()
	cached, ok := s.cache[location]
	s.mux.RUnlock()
	if ok {
		return cached, nil
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to load routine from %s: %w", location, err)
	}
	ret, err := Decode(location, data)
	if err != nil {
		return nil, err
	}
	s.mux.Lock()
	s.cache[location] = ret
	s.mux.Unlock()
	return ret, nil
}

// Refresh discards the cached copy of the routine at URL; the next Load
// reads it again.
func (s *Service) Refresh(URL string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.cache, s.Location(URL))
}

// Upsert decodes data, stores it at URL and caches the result.
func (s *Service) Upsert(ctx context.Context, URL string, data []byte) (*Routine, error) {
	location := s.Location(URL)
	ret, err := Decode(location, data)
	if err != nil {
		return nil, err
	}
	if err = s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to store routine %s: %w", location, err)
	}
	s.mux.Lock()
	s.cache[location] = ret
	s.mux.Unlock()
	return ret, nil
}

// Build loads the routine at URL and assembles it into a command handle.
func (s *Service) Build(ctx context.Context, URL string) (*command.Ptr, error) {
	aRoutine, err := s.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	ret := s.registry.Build(aRoutine)
	if err = ret.Err(); err != nil {
		return nil, fmt.Errorf("failed to build routine %s: %w", aRoutine.Name, err)
	}
	return ret, nil
}

// New creates a routine service.
func New(opts ...Option) *Service {
	ret := &Service{
		fs:    afs.New(),
		cache: make(map[string]*Routine),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.registry == nil {
		ret.registry = NewRegistry()
	}
	return ret
}
