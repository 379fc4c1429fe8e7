package services

import (
	"sync"

	"salesboard/internal/models"

	"github.com/google/uuid"
)

// DashboardSession couples one dashboard state machine with the page it
// last displayed. Cursor transitions consume that page's cursors, so a
// "next" click can only ever follow a page the session has actually
// been served.
type DashboardSession struct {
	State *DashboardState

	mu   sync.Mutex
	last *models.QueryResult
}

// RememberPage records the page most recently served to this session
func (s *DashboardSession) RememberPage(result *models.QueryResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = result
}

// LastPage returns the page most recently served to this session, or
// nil before the first page was served
func (s *DashboardSession) LastPage() *models.QueryResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// SessionRegistry hands out dashboard sessions by opaque ID. Sessions
// live in memory only and do not survive a restart.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*DashboardSession
}

// NewSessionRegistry creates an empty session registry
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*DashboardSession),
	}
}

// Create starts a new session at the first page with the default sort
func (r *SessionRegistry) Create() (string, *DashboardSession) {
	id := uuid.NewString()
	session := &DashboardSession{State: NewDashboardState()}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = session

	return id, session
}

// Get looks up an existing session by ID
func (r *SessionRegistry) Get(id string) (*DashboardSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	return session, ok
}
