package http

import (
	"github.com/google/uuid"
	"net/http"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "session_id"
)

// sessionID identifies the caller's session from the X-Session-ID header or
// the session_id cookie. A caller with neither is issued a new session.
func (s *Server) sessionID(rw http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get(sessionHeader); id != "" {
		return id
	}
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(rw, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	rw.Header().Set(sessionHeader, id)
	return id
}
