// Package session holds server-side session state: the authenticated
// identity reference, the effective role used for authorization, the
// punch-clock toggle and presence. One registry per process.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-dayflow-hrms/internal/model"
)

var ErrNotFound = errors.New("session not found")

// Session is a snapshot of one live session. EffectiveRole may diverge
// from Role only when Role is admin (the "view as" override).
type Session struct {
	ID            uuid.UUID
	UserID        string
	Role          model.Role
	EffectiveRole model.Role
	CheckedIn     bool
	CheckInAt     *string // HH:MM, set while checked in
	CreatedAt     time.Time
	LastSeenAt    time.Time
}

type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*Session)}
}

// Create opens a session with the effective role reset to the true role.
func (r *Registry) Create(userID string, role model.Role) Session {
	now := time.Now()
	s := &Session{
		ID:            uuid.New(),
		UserID:        userID,
		Role:          role,
		EffectiveRole: role,
		CreatedAt:     now,
		LastSeenAt:    now,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return *s
}

// Get returns a copy of the session; mutations go through the registry.
func (r *Registry) Get(id uuid.UUID) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Delete closes a session. Deleting an unknown id is a no-op, which
// makes logout idempotent.
func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// SetEffectiveRole applies the "view as" override. Only sessions whose
// true role is admin may diverge; for everyone else the call is
// ignored and the current effective role is returned unchanged.
func (r *Registry) SetEffectiveRole(id uuid.UUID, role model.Role) (model.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return "", ErrNotFound
	}
	if s.Role != model.RoleAdmin || !role.Valid() {
		return s.EffectiveRole, nil
	}
	s.EffectiveRole = role
	return s.EffectiveRole, nil
}

// SetPunch records the punch-clock toggle. This is session-local view
// state and is never written back to the attendance records.
func (r *Registry) SetPunch(id uuid.UUID, checkedIn bool, at *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.CheckedIn = checkedIn
	s.CheckInAt = at
	return nil
}

// Touch updates presence for the heartbeat.
func (r *Registry) Touch(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.LastSeenAt = time.Now()
	return nil
}
