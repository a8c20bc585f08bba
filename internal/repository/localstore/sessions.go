package localstore

import (
	"context"
	"time"

	"github.com/dom/job-board-website/internal/domain"
)

type sessionRepository struct {
	s *Store
}

func NewSessionRepository(s *Store) *sessionRepository {
	return &sessionRepository{s: s}
}

func (r *sessionRepository) Create(ctx context.Context, id, userID string, data map[string]any, expiresAt time.Time) (*domain.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session := domain.Session{
		ID:        id,
		UserID:    userID,
		Data:      data,
		ExpiresAt: expiresAt,
	}

	r.s.db.Sessions = append(r.s.db.Sessions, session)
	if err := r.s.save(); err != nil {
		return nil, err
	}
	out := session
	return &out, nil
}

// Get looks up a session by token. An expired session is physically removed
// as a side effect of the lookup and reported as absent, so the periodic
// sweep is never the only line of defense against stale sessions.
func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.Sessions {
		if r.s.db.Sessions[i].ID != id {
			continue
		}
		session := r.s.db.Sessions[i]
		if session.Expired(r.s.now()) {
			r.s.db.Sessions = append(r.s.db.Sessions[:i], r.s.db.Sessions[i+1:]...)
			if err := r.s.save(); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return &session, nil
	}
	return nil, nil
}

// Delete is idempotent: removing an absent session is a no-op.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.Sessions {
		if r.s.db.Sessions[i].ID == id {
			r.s.db.Sessions = append(r.s.db.Sessions[:i], r.s.db.Sessions[i+1:]...)
			return r.s.save()
		}
	}
	return nil
}

// CleanupExpired bulk-removes every expired session and reports how many
// were dropped. Together with the lazy check in Get this bounds the growth
// of expired-but-unaccessed sessions.
func (r *sessionRepository) CleanupExpired(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	kept := r.s.db.Sessions[:0]
	for _, session := range r.s.db.Sessions {
		if !session.Expired(now) {
			kept = append(kept, session)
		}
	}
	removed := len(r.s.db.Sessions) - len(kept)
	r.s.db.Sessions = kept
	if removed == 0 {
		return 0, nil
	}
	if err := r.s.save(); err != nil {
		return 0, err
	}
	return removed, nil
}
