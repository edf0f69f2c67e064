package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mishasvintus/codejam_client/internal/domain"
	"github.com/mishasvintus/codejam_client/internal/store"
	"github.com/mishasvintus/codejam_client/internal/transport"
)

// UserService synchronizes the current user and session.
// It is the only writer of the Session and User stores.
type UserService struct {
	sender Sender
	stores *store.Stores
	log    *zap.SugaredLogger
}

// NewUserService creates a new user service.
func NewUserService(sender Sender, stores *store.Stores, log *zap.SugaredLogger) *UserService {
	return &UserService{sender: sender, stores: stores, log: log}
}

// FetchUser loads the current user. 200 publishes a logged-in session, 401
// publishes the logged-out session. Any other status, an undecodable body or a
// user without an Id is logged and leaves the stores unchanged. Only transport
// failures are returned.
func (s *UserService) FetchUser(ctx context.Context) error {
	resp, err := s.sender.Send(ctx, get("/user/"))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		s.stores.PublishSession(domain.LoggedOut())
		return nil
	case http.StatusOK:
	default:
		s.log.Warnw("unexpected status fetching user", "status", resp.StatusCode)
		return nil
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		s.log.Errorw("error deserializing user", "error", err)
		return nil
	}
	if user.ID == "" {
		s.log.Errorw("error deserializing user", "error", "missing Id")
		return nil
	}
	s.stores.PublishSession(domain.LoggedInAs(&user))
	return nil
}

type putProfileRequest struct {
	DisplayName string `json:"DisplayName"`
}

// UpdateProfile changes the current user's display name. Only the display
// name is sent. A 400 with field errors is returned as a FormResponse, not an error.
func (s *UserService) UpdateProfile(ctx context.Context, displayName string) (*domain.FormResponse, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name is required", ErrInvalidArgument)
	}

	var form domain.FormResponse
	err := call(ctx, s.sender, transport.Request{
		Method: http.MethodPut,
		Path:   "/user/profile/",
		Body:   putProfileRequest{DisplayName: displayName},
	}, &form, http.StatusOK, http.StatusBadRequest)
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// Logout ends the server session. The session is cleared client-side
// whatever the server answers, including when the request fails; a transport
// failure is still returned.
func (s *UserService) Logout(ctx context.Context) error {
	defer s.stores.PublishSession(domain.LoggedOut())

	resp, err := s.sender.Send(ctx, get("/user/logout"))
	if err != nil {
		s.log.Errorw("logout error", "error", err)
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}
