package handlers

import (
	"net/http"
	"sync"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/security"

	"costestimation/services"
)

const sessionCookie = "estimate_session"

// SessionStore owns one cost sheet per browser session, keyed by a random
// cookie value. Sheets live in memory only; they are the working estimate,
// not persistent state. The mutex guards the registry map; each individual
// sheet is only ever touched by its own session's requests, which arrive
// one at a time.
type SessionStore struct {
	mu     sync.Mutex
	sheets map[string]*services.CostSheet
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sheets: make(map[string]*services.CostSheet)}
}

// Sheet returns the cost sheet for the request's session, creating both the
// session cookie and an empty sheet on first use.
func (s *SessionStore) Sheet(e *core.RequestEvent) *services.CostSheet {
	id := s.sessionID(e)

	s.mu.Lock()
	defer s.mu.Unlock()
	sheet, ok := s.sheets[id]
	if !ok {
		sheet = services.NewCostSheet()
		s.sheets[id] = sheet
	}
	return sheet
}

// Replace swaps in a new sheet for the request's session, e.g. after a
// project restore.
func (s *SessionStore) Replace(e *core.RequestEvent, sheet *services.CostSheet) {
	id := s.sessionID(e)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheets[id] = sheet
}

func (s *SessionStore) sessionID(e *core.RequestEvent) string {
	if cookie, err := e.Request.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := security.RandomString(24)
	http.SetCookie(e.Response, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Make the new id visible to later lookups within this same request.
	e.Request.AddCookie(&http.Cookie{Name: sessionCookie, Value: id})
	return id
}
