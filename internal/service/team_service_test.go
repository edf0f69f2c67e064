package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/codejam_client/internal/domain"
	"github.com/mishasvintus/codejam_client/internal/service"
	"github.com/mishasvintus/codejam_client/internal/transport"
)

func TestTeamService_CreateTeam(t *testing.T) {
	client, sender := newClient(t)

	team := domain.NewTeam()
	team.EventID = "e1"
	team.Name = "Gophers"

	sender.EXPECT().Send(gomock.Any(), pathIs{http.MethodPost, "/team/"}).
		DoAndReturn(func(_ context.Context, r transport.Request) (*http.Response, error) {
			sent, ok := r.Body.(domain.Team)
			require.True(t, ok)
			assert.Equal(t, "Gophers", sent.Name)
			assert.Equal(t, domain.VisibilityPublic, sent.Visibility)
			return response(http.StatusCreated, `{"id":"t1"}`), nil
		})

	id, err := client.Teams.CreateTeam(context.Background(), team)
	require.NoError(t, err)
	assert.Equal(t, "t1", id)
}

func TestTeamService_CreateTeamInvalidVisibility(t *testing.T) {
	client, _ := newClient(t)
	team := domain.NewTeam()
	team.Visibility = "hidden"

	_, err := client.Teams.CreateTeam(context.Background(), team)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestTeamService_Lists(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(*service.TeamService) ([]domain.Team, error)
	}{
		{"browse", "/teams/browse", func(s *service.TeamService) ([]domain.Team, error) {
			return s.BrowseTeams(context.Background())
		}},
		{"user teams", "/teams", func(s *service.TeamService) ([]domain.Team, error) {
			return s.UserTeams(context.Background())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, sender := newClient(t)
			sender.EXPECT().Send(gomock.Any(), getPath(tt.path)).
				Return(response(http.StatusOK, `[{"Id":"t1","Name":"A"},{"Id":"t2","Name":"B"}]`), nil)

			teams, err := tt.call(client.Teams)
			require.NoError(t, err)
			require.Len(t, teams, 2)
			assert.Equal(t, "B", teams[1].Name)
		})
	}
}

func TestTeamService_GetTeam(t *testing.T) {
	body := `{"Team":{"Id":"t1","Name":"A","InviteCode":"abc"},"Event":{"Id":"e1"},"Members":[{"UserId":"u1","TeamRole":"owner"},{"UserId":"u2","TeamRole":"member"}]}`

	t.Run("by id", func(t *testing.T) {
		client, sender := newClient(t)
		sender.EXPECT().Send(gomock.Any(), getPath("/team/t1")).Return(response(http.StatusOK, body), nil)

		info, err := client.Teams.GetTeam(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, "A", info.Team.Name)
		require.Len(t, info.Members, 2)
		assert.Equal(t, domain.TeamRoleOwner, info.Members[0].TeamRole)
	})

	t.Run("by invite", func(t *testing.T) {
		client, sender := newClient(t)
		sender.EXPECT().Send(gomock.Any(), getPath("/team/invite/abc")).Return(response(http.StatusOK, body), nil)

		info, err := client.Teams.GetTeamByInvite(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "e1", info.Event.ID)
	})

	t.Run("empty identifiers", func(t *testing.T) {
		client, _ := newClient(t)
		_, err := client.Teams.GetTeam(context.Background(), "")
		assert.ErrorIs(t, err, service.ErrEmptyID)
		_, err = client.Teams.GetTeamByInvite(context.Background(), "")
		assert.ErrorIs(t, err, service.ErrEmptyID)
	})
}

func TestTeamService_JoinTeam(t *testing.T) {
	client, sender := newClient(t)

	sender.EXPECT().Send(gomock.Any(), pathIs{http.MethodPost, "/team/abc"}).
		DoAndReturn(func(_ context.Context, r transport.Request) (*http.Response, error) {
			assert.JSONEq(t, `{"teamId":"t1","inviteCode":"abc"}`, bodyJSON(t, r))
			return response(http.StatusOK, ""), nil
		})

	require.NoError(t, client.Teams.JoinTeam(context.Background(), "t1", "abc"))
	assert.ErrorIs(t, client.Teams.JoinTeam(context.Background(), "t1", ""), service.ErrEmptyID)
}

func TestTeamService_JoinPublicTeam(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr error
	}{
		{name: "joined", status: http.StatusOK, body: `"t1"`, want: "t1"},
		{name: "private", status: http.StatusForbidden, wantErr: service.ErrForbidden},
		{name: "already member", status: http.StatusConflict, body: `{}`, wantErr: service.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, sender := newClient(t)
			sender.EXPECT().Send(gomock.Any(), pathIs{http.MethodPost, "/team/join"}).
				DoAndReturn(func(_ context.Context, r transport.Request) (*http.Response, error) {
					assert.JSONEq(t, `{"teamId":"t1"}`, bodyJSON(t, r))
					return response(tt.status, tt.body), nil
				})

			got, err := client.Teams.JoinPublicTeam(context.Background(), "t1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
