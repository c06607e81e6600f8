// Package registry provides the concurrent store of scan sessions. A
// session is registered as Running the moment a scan starts and moves to
// exactly one terminal state, so polling callers can tell an unfinished
// scan from a failed one.
package registry

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Status is the lifecycle state of a scan session.
type Status int

const (
	StatusRunning Status = iota
	StatusCompleted
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	names := [...]string{"running", "completed", "failed"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Sentinel errors for result lookups.
var (
	ErrNotFound = errors.New("scan not found")
	ErrRunning  = errors.New("scan still running")
)

// Session is one registry entry. Result is set only for completed
// sessions and Reason only for failed ones.
type Session struct {
	ScanID      string
	ProjectPath string
	Status      Status
	StartedAt   time.Time
	CompletedAt time.Time
	Result      any
	Reason      string
}

// Registry is a mutex-guarded map of scan_id to session. Critical sections
// are map insert/lookup only.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// New creates an empty registry. One registry lives for the process
// lifetime; it is never persisted.
func New() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Begin registers a new running session for scanID. Registering an id that
// already exists is an error.
func (r *Registry) Begin(scanID, projectPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[scanID]; ok {
		return fmt.Errorf("scan %s already registered", scanID)
	}
	r.sessions[scanID] = &Session{
		ScanID:      scanID,
		ProjectPath: projectPath,
		Status:      StatusRunning,
		StartedAt:   time.Now().UTC(),
	}
	return nil
}

// Complete moves a running session to Completed and attaches its result.
// Terminal sessions are left untouched.
func (r *Registry) Complete(scanID string, result any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[scanID]
	if !ok || s.Status != StatusRunning {
		return
	}
	s.Status = StatusCompleted
	s.Result = result
	s.CompletedAt = time.Now().UTC()
}

// Fail moves a running session to Failed with a human-readable reason.
func (r *Registry) Fail(scanID, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[scanID]
	if !ok || s.Status != StatusRunning {
		return
	}
	s.Status = StatusFailed
	s.Reason = reason
	s.CompletedAt = time.Now().UTC()
}

// Get returns the session for scanID, or false when the id is unknown.
func (r *Registry) Get(scanID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[scanID]
	if !ok {
		return nil, false
	}
	copy := *s
	return &copy, true
}

// Result returns the completed result for scanID. Unknown ids yield
// ErrNotFound, running scans ErrRunning, and failed scans the recorded
// failure reason.
func (r *Registry) Result(scanID string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[scanID]
	if !ok {
		return nil, ErrNotFound
	}
	switch s.Status {
	case StatusRunning:
		return nil, ErrRunning
	case StatusFailed:
		return nil, fmt.Errorf("scan failed: %s", s.Reason)
	}
	return s.Result, nil
}
