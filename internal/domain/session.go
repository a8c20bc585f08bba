package domain

import "time"

// Session binds an opaque cookie token to a user and an expiry. The token is
// caller-generated and doubles as the record id.
type Session struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Data      map[string]any `json:"data,omitempty"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// Expired reports whether the session's expiry has passed at the given time.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
