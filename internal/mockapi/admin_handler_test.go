package mockapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/codejam_client/internal/domain"
)

func TestAdminHandler_Access(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/admin/user/all", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(t, http.MethodGet, "/admin/user/all", nil, api.login(t, api.member.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodGet, "/admin/user/all", nil, api.login(t, api.admin.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var users []domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, api.admin.ID, users[0].ID, "users with a role sort first")
}

func TestAdminHandler_Moderation(t *testing.T) {
	api := newTestAPI(t)
	cookie := api.login(t, api.admin.ID)
	base := "/admin/user/" + api.member.ID

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		check  func(*testing.T, domain.User)
	}{
		{
			name:   "ban",
			path:   base + "/ban",
			status: http.StatusOK,
			check: func(t *testing.T, u domain.User) {
				assert.Equal(t, domain.StatusBanned, u.AccountStatus)
			},
		},
		{
			name:   "unban",
			path:   base + "/unban",
			status: http.StatusOK,
			check: func(t *testing.T, u domain.User) {
				assert.Equal(t, domain.StatusActive, u.AccountStatus)
			},
		},
		{
			name:   "account status",
			path:   base + "/account_status/",
			body:   map[string]string{"AccountStatus": "BANNED"},
			status: http.StatusOK,
			check: func(t *testing.T, u domain.User) {
				assert.Equal(t, domain.StatusBanned, u.AccountStatus)
			},
		},
		{
			name:   "invalid account status",
			path:   base + "/account_status/",
			body:   map[string]string{"AccountStatus": "GONE"},
			status: http.StatusBadRequest,
		},
		{
			name:   "display name lock",
			path:   base + "/display_name_lock",
			body:   map[string]bool{"Lock": true},
			status: http.StatusOK,
			check: func(t *testing.T, u domain.User) {
				assert.True(t, u.LockDisplayName)
			},
		},
		{
			name:   "display name",
			path:   base + "/display_name",
			body:   map[string]string{"DisplayName": "Renamed"},
			status: http.StatusOK,
			check: func(t *testing.T, u domain.User) {
				assert.Equal(t, "Renamed", u.DisplayName)
			},
		},
		{
			name:   "admin target is immune",
			path:   "/admin/user/" + api.admin.ID + "/ban",
			status: http.StatusForbidden,
		},
		{
			name:   "unknown target",
			path:   "/admin/user/nobody/ban",
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(t, http.MethodPut, tt.path, tt.body, cookie)
			require.Equal(t, tt.status, w.Code)
			if tt.check == nil {
				return
			}
			var user domain.User
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
			tt.check(t, user)
		})
	}
}
