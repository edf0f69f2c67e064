package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mishasvintus/codejam_client/internal/domain"
	"github.com/mishasvintus/codejam_client/internal/transport"
)

// TeamService handles team operations. It writes to no store; results go
// straight back to the caller.
type TeamService struct {
	sender Sender
}

// NewTeamService creates a new team service.
func NewTeamService(sender Sender) *TeamService {
	return &TeamService{sender: sender}
}

type createTeamResponse struct {
	ID string `json:"id"`
}

// CreateTeam posts the team and returns the id the server assigned.
// The creator becomes the team owner server-side.
func (s *TeamService) CreateTeam(ctx context.Context, team domain.Team) (string, error) {
	if team.Visibility == "" {
		team.Visibility = domain.VisibilityPublic
	}
	if !team.Visibility.IsValid() {
		return "", ErrInvalidArgument
	}

	var created createTeamResponse
	err := call(ctx, s.sender, transport.Request{
		Method: http.MethodPost,
		Path:   "/team/" + url.PathEscape(team.ID),
		Body:   team,
	}, &created, http.StatusOK, http.StatusCreated)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// BrowseTeams lists every team.
func (s *TeamService) BrowseTeams(ctx context.Context) ([]domain.Team, error) {
	var teams []domain.Team
	if err := call(ctx, s.sender, get("/teams/browse"), &teams, http.StatusOK); err != nil {
		return nil, err
	}
	return teams, nil
}

// UserTeams lists the teams of the logged-in user.
func (s *TeamService) UserTeams(ctx context.Context) ([]domain.Team, error) {
	var teams []domain.Team
	if err := call(ctx, s.sender, get("/teams"), &teams, http.StatusOK); err != nil {
		return nil, err
	}
	return teams, nil
}

// GetTeam returns a team with its event and members.
func (s *TeamService) GetTeam(ctx context.Context, id string) (*domain.TeamInfo, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.teamInfo(ctx, "/team/"+url.PathEscape(id))
}

// GetTeamByInvite resolves an invite code to its team.
func (s *TeamService) GetTeamByInvite(ctx context.Context, inviteCode string) (*domain.TeamInfo, error) {
	if inviteCode == "" {
		return nil, ErrEmptyID
	}
	return s.teamInfo(ctx, "/team/invite/"+url.PathEscape(inviteCode))
}

func (s *TeamService) teamInfo(ctx context.Context, path string) (*domain.TeamInfo, error) {
	var info domain.TeamInfo
	if err := call(ctx, s.sender, get(path), &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}

type invitePayload struct {
	TeamID     string `json:"teamId"`
	InviteCode string `json:"inviteCode"`
}

type joinPayload struct {
	TeamID string `json:"teamId"`
}

// JoinTeam joins a team through its invite code.
func (s *TeamService) JoinTeam(ctx context.Context, teamID, inviteCode string) error {
	if teamID == "" || inviteCode == "" {
		return ErrEmptyID
	}
	return call(ctx, s.sender, transport.Request{
		Method: http.MethodPost,
		Path:   "/team/" + url.PathEscape(inviteCode),
		Body:   invitePayload{TeamID: teamID, InviteCode: inviteCode},
	}, nil, http.StatusOK)
}

// JoinPublicTeam joins a public team and returns the joined team's id.
// A private team yields ErrForbidden, an existing membership ErrConflict.
func (s *TeamService) JoinPublicTeam(ctx context.Context, teamID string) (string, error) {
	if teamID == "" {
		return "", ErrEmptyID
	}
	var joined string
	err := call(ctx, s.sender, transport.Request{
		Method: http.MethodPost,
		Path:   "/team/join",
		Body:   joinPayload{TeamID: teamID},
	}, &joined, http.StatusOK)
	if err != nil {
		return "", err
	}
	return joined, nil
}
