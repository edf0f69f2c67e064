package domain

// Session is the client's belief about the authenticated user.
// LoggedIn is true exactly when User is non-nil.
type Session struct {
	User     *User
	LoggedIn bool
}

// LoggedOut returns the unauthenticated session.
func LoggedOut() Session {
	return Session{}
}

// LoggedInAs returns a session for u, or the logged-out session when u is nil.
func LoggedInAs(u *User) Session {
	if u == nil {
		return LoggedOut()
	}
	return Session{User: u, LoggedIn: true}
}

// Valid reports whether LoggedIn agrees with the presence of a user.
func (s Session) Valid() bool {
	return s.LoggedIn == (s.User != nil)
}
