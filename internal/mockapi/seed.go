package mockapi

import (
	"fmt"

	"github.com/mishasvintus/codejam_client/internal/domain"
)

// Seed fills s with an admin, a regular user and an active event open for
// sign-ups. It returns the admin and the regular user.
func Seed(s *State) (admin, member domain.User, err error) {
	admin = s.AddUser(domain.User{
		DisplayName:     "Admin",
		Role:            domain.RoleAdmin,
		ServiceName:     "discord",
		ServiceUserID:   "1000",
		ServiceUserName: "admin",
	})
	member = s.AddUser(domain.User{
		DisplayName:     "Gopher",
		ServiceName:     "discord",
		ServiceUserID:   "1001",
		ServiceUserName: "gopher",
	})

	event, err := domain.NewEvent([]byte(`{"Id":"spring-jam","Title":"Spring Code Jam","Status":"SIGNUP"}`))
	if err != nil {
		return admin, member, fmt.Errorf("failed to build seed event: %w", err)
	}
	if err := s.PutEvent(event); err != nil {
		return admin, member, fmt.Errorf("failed to store seed event: %w", err)
	}
	if err := s.SetActiveEvent(event.ID); err != nil {
		return admin, member, fmt.Errorf("failed to activate seed event: %w", err)
	}
	return admin, member, nil
}
