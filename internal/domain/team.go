package domain

import "fmt"

// Visibility controls who may join a team without an invite code.
type Visibility string

// Visibility constants.
const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// NewVisibility creates a new Visibility with validation.
func NewVisibility(s string) (Visibility, error) {
	v := Visibility(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid visibility: %s (must be one of: %s, %s)", s, VisibilityPublic, VisibilityPrivate)
	}
	return v, nil
}

// IsValid checks if the visibility is valid.
func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Team roles.
const (
	TeamRoleOwner  = "owner"
	TeamRoleMember = "member"
)

// Team represents a group of users taking part in an event.
type Team struct {
	ID           string       `json:"Id"`
	EventID      string       `json:"EventId"`
	Name         string       `json:"Name"`
	Visibility   Visibility   `json:"Visibility"`
	Timezone     string       `json:"Timezone"`
	Technologies string       `json:"Technologies"`
	Availability string       `json:"Availability"`
	Description  string       `json:"Description"`
	InviteCode   string       `json:"InviteCode"`
	Members      []TeamMember `json:"TeamMembers"`
}

// NewTeam returns an empty team with the default visibility.
func NewTeam() Team {
	return Team{Visibility: VisibilityPublic, Members: []TeamMember{}}
}

// TeamMember represents a user within a team.
type TeamMember struct {
	TeamID        string  `json:"TeamId"`
	UserID        string  `json:"UserId"`
	TeamRole      string  `json:"TeamRole"`
	DisplayName   string  `json:"DisplayName"`
	AvatarURL     *string `json:"AvatarUrl"`
	ServiceUserID string  `json:"ServiceUserId"`
}

// TeamInfo is a team together with its event and ordered member list.
type TeamInfo struct {
	Team    *Team        `json:"Team"`
	Event   *Event       `json:"Event"`
	Members []TeamMember `json:"Members"`
}
