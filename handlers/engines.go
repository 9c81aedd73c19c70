// Package handlers contains the HTTP handlers of the takeoff application.
package handlers

import (
	"sync"

	"quantitytakeoff/takeoff"
)

// EngineSet holds one measurement engine per project. Engines are created
// on demand and live for the duration of the process; a project without an
// uploaded model simply has an engine with no model loaded.
type EngineSet struct {
	mu      sync.Mutex
	engines map[string]*takeoff.Engine
}

// NewEngineSet returns an empty EngineSet.
func NewEngineSet() *EngineSet {
	return &EngineSet{engines: make(map[string]*takeoff.Engine)}
}

// For returns the engine for the given project, creating it if needed.
func (s *EngineSet) For(projectID string) *takeoff.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, ok := s.engines[projectID]
	if !ok {
		eng = takeoff.NewEngine()
		s.engines[projectID] = eng
	}
	return eng
}
