// Package session keeps calculator engines for clients that may call in from
// several goroutines.
package session

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/fjl/giocalc/internal/calc"
)

// DefaultID names the session used when a caller does not pick one.
const DefaultID = "default"

// ErrUnknown is returned for session IDs that were never created or are closed.
var ErrUnknown = errors.New("unknown session")

// ID identifies a session.
type ID string

type entry struct {
	mu     sync.Mutex
	engine calc.Engine
}

// Registry holds one engine per session. Calls on the same session are
// serialized; different sessions do not block each other. The zero value
// is ready to use.
type Registry struct {
	mu       sync.Mutex
	sessions map[ID]*entry
}

func NewRegistry() *Registry {
	return new(Registry)
}

// entries returns the session map, creating it on first use.
// r.mu must be held.
func (r *Registry) entries() map[ID]*entry {
	if r.sessions == nil {
		r.sessions = map[ID]*entry{DefaultID: new(entry)}
	}
	return r.sessions
}

// New creates a session with an empty calculator.
func (r *Registry) New() ID {
	id := ID(uuid.NewString())
	r.mu.Lock()
	sessions := r.entries()
	sessions[id] = new(entry)
	n := len(sessions)
	r.mu.Unlock()
	log.Printf("session %s created (%d open)", id, n)
	return id
}

// Close drops a session. The default session is reset instead.
func (r *Registry) Close(id ID) error {
	if id == "" || id == DefaultID {
		return r.Do(DefaultID, func(e *calc.Engine) { e.Reset() })
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	sessions := r.entries()
	if _, ok := sessions[id]; !ok {
		return ErrUnknown
	}
	delete(sessions, id)
	log.Printf("session %s closed", id)
	return nil
}

// Do runs fn with exclusive access to the engine of session id.
// An empty id selects the default session.
func (r *Registry) Do(id ID, fn func(*calc.Engine)) error {
	if id == "" {
		id = DefaultID
	}
	r.mu.Lock()
	ent, ok := r.entries()[id]
	r.mu.Unlock()
	if !ok {
		return ErrUnknown
	}
	ent.mu.Lock()
	defer ent.mu.Unlock()
	fn(&ent.engine)
	return nil
}

// Submit presses token on the engine of session id.
func (r *Registry) Submit(id ID, token string) (display string, err error) {
	err = r.Do(id, func(e *calc.Engine) { display = e.Submit(token) })
	return display, err
}
