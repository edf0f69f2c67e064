package store

import "github.com/mishasvintus/codejam_client/internal/domain"

// Stores bundles every store the sync layer writes to.
type Stores struct {
	// Session starts logged out and is the one source of truth for "am I logged in".
	Session *Store[domain.Session]
	// User mirrors Session.User for views that only need the raw record.
	User          *Store[*domain.User]
	ActiveEvent   *Store[*domain.Event]
	EventStatuses *Store[[]domain.EventStatus]
}

// NewStores creates the store set in its startup state.
func NewStores() *Stores {
	return &Stores{
		Session:       NewWith(domain.LoggedOut()),
		User:          New[*domain.User](),
		ActiveEvent:   New[*domain.Event](),
		EventStatuses: New[[]domain.EventStatus](),
	}
}

// PublishSession writes s to the session store and its user to the user store.
func (s *Stores) PublishSession(session domain.Session) {
	s.User.Set(session.User)
	s.Session.Set(session)
}
