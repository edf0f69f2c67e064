package mockapi

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrAlreadyMember  = errors.New("user is already a team member")
	ErrSignupsClosed  = errors.New("event is not accepting signups")
	ErrInviteMismatch = errors.New("invite code does not match team")
)
