package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/codejam_client/internal/domain"
	"github.com/mishasvintus/codejam_client/internal/service"
	"github.com/mishasvintus/codejam_client/internal/transport"
)

const aliceJSON = `{"Id":"u1","DisplayName":"Alice","Role":"","ServiceName":"discord","ServiceUserId":"42","ServiceUserName":"alice#1","AvatarUrl":null,"AccountStatus":"ACTIVE","LockDisplayName":false}`

func TestUserService_FetchUser(t *testing.T) {
	ctx := context.Background()
	alice := &domain.User{ID: "u0", DisplayName: "Stale"}

	tests := []struct {
		name        string
		initial     domain.Session
		status      int
		body        string
		wantSession domain.Session
		wantUser    string
	}{
		{
			name:     "200 publishes logged-in session",
			initial:  domain.LoggedOut(),
			status:   http.StatusOK,
			body:     aliceJSON,
			wantUser: "u1",
		},
		{
			name:        "401 publishes logged-out session",
			initial:     domain.LoggedInAs(alice),
			status:      http.StatusUnauthorized,
			wantSession: domain.LoggedOut(),
		},
		{
			name:        "500 leaves session unchanged",
			initial:     domain.LoggedInAs(alice),
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantSession: domain.LoggedInAs(alice),
		},
		{
			name:        "malformed body leaves session unchanged",
			initial:     domain.LoggedInAs(alice),
			status:      http.StatusOK,
			body:        `{"Id":`,
			wantSession: domain.LoggedInAs(alice),
		},
		{
			name:        "null body leaves session unchanged",
			initial:     domain.LoggedInAs(alice),
			status:      http.StatusOK,
			body:        `null`,
			wantSession: domain.LoggedInAs(alice),
		},
		{
			name:        "user without id leaves session unchanged",
			initial:     domain.LoggedOut(),
			status:      http.StatusOK,
			body:        `{"DisplayName":"Ghost"}`,
			wantSession: domain.LoggedOut(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, sender := newClient(t)
			client.Stores.PublishSession(tt.initial)

			sender.EXPECT().Send(gomock.Any(), getPath("/user/")).Return(response(tt.status, tt.body), nil)

			require.NoError(t, client.Users.FetchUser(ctx))

			got := client.Stores.Session.Get()
			assert.True(t, got.Valid())
			if tt.wantUser != "" {
				require.True(t, got.LoggedIn)
				assert.Equal(t, tt.wantUser, got.User.ID)
				assert.Equal(t, "Alice", got.User.DisplayName)
				assert.Same(t, got.User, client.Stores.User.Get())
				return
			}
			assert.Equal(t, tt.wantSession, got)
			assert.Equal(t, tt.wantSession.User, client.Stores.User.Get())
		})
	}
}

func TestUserService_FetchUserTransportFailure(t *testing.T) {
	client, sender := newClient(t)
	cause := &transport.Error{Method: http.MethodGet, URL: "/user/", Err: errors.New("unreachable")}
	sender.EXPECT().Send(gomock.Any(), getPath("/user/")).Return(nil, cause)

	var notified int
	client.Stores.Session.Subscribe(func(domain.Session) { notified++ })

	err := client.Users.FetchUser(context.Background())
	require.Error(t, err)

	var terr *transport.Error
	assert.True(t, errors.As(err, &terr))
	assert.Equal(t, 1, notified)
	assert.Equal(t, domain.LoggedOut(), client.Stores.Session.Get())
}

func TestUserService_UpdateProfileSendsOnlyDisplayName(t *testing.T) {
	client, sender := newClient(t)

	sender.EXPECT().Send(gomock.Any(), pathIs{http.MethodPut, "/user/profile/"}).
		DoAndReturn(func(_ context.Context, r transport.Request) (*http.Response, error) {
			assert.JSONEq(t, `{"DisplayName":"Alice B"}`, bodyJSON(t, r))
			return response(http.StatusOK, `{"Data":`+aliceJSON+`,"Errors":{}}`), nil
		})

	form, err := client.Users.UpdateProfile(context.Background(), "  Alice B ")
	require.NoError(t, err)
	require.NotNil(t, form.Data)
	assert.Equal(t, "u1", form.Data.ID)
	assert.Empty(t, form.Errors)
	assert.False(t, client.Stores.User.Loaded())
}

func TestUserService_UpdateProfileErrors(t *testing.T) {
	t.Run("blank name rejected locally", func(t *testing.T) {
		client, _ := newClient(t)
		_, err := client.Users.UpdateProfile(context.Background(), "   ")
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("validation errors returned as form", func(t *testing.T) {
		client, sender := newClient(t)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(response(http.StatusBadRequest, `{"Data":null,"Errors":{"DisplayName":"required"}}`), nil)

		form, err := client.Users.UpdateProfile(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, "required", form.Errors["DisplayName"])
	})

	t.Run("locked display name is forbidden", func(t *testing.T) {
		client, sender := newClient(t)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(response(http.StatusForbidden, ""), nil)

		_, err := client.Users.UpdateProfile(context.Background(), "x")
		assert.ErrorIs(t, err, service.ErrForbidden)

		var serr *service.StatusError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, http.StatusForbidden, serr.StatusCode)
	})
}

func TestUserService_Logout(t *testing.T) {
	statuses := []int{http.StatusOK, http.StatusFound, http.StatusInternalServerError}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			client, sender := newClient(t)
			client.Stores.PublishSession(domain.LoggedInAs(&domain.User{ID: "u1"}))

			sender.EXPECT().Send(gomock.Any(), getPath("/user/logout")).Return(response(status, "oops"), nil)

			require.NoError(t, client.Users.Logout(context.Background()))
			assert.Equal(t, domain.LoggedOut(), client.Stores.Session.Get())
			assert.Nil(t, client.Stores.User.Get())
		})
	}
}

func TestUserService_LogoutTransportFailure(t *testing.T) {
	client, sender := newClient(t)
	client.Stores.PublishSession(domain.LoggedInAs(&domain.User{ID: "u1"}))

	sender.EXPECT().Send(gomock.Any(), getPath("/user/logout")).Return(nil, errors.New("offline"))

	err := client.Users.Logout(context.Background())
	assert.Error(t, err)
	assert.Equal(t, domain.LoggedOut(), client.Stores.Session.Get())
}
