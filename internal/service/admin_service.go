package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mishasvintus/codejam_client/internal/domain"
	"github.com/mishasvintus/codejam_client/internal/transport"
)

// AdminService wraps the /admin/user routes. Each mutation sends only the
// changed field and returns the updated user.
type AdminService struct {
	sender Sender
}

// NewAdminService creates a new admin service.
func NewAdminService(sender Sender) *AdminService {
	return &AdminService{sender: sender}
}

type putAccountStatusRequest struct {
	AccountStatus domain.AccountStatus `json:"AccountStatus"`
}

type putDisplayNameLockRequest struct {
	Lock bool `json:"Lock"`
}

type putDisplayNameRequest struct {
	DisplayName string `json:"DisplayName"`
}

// ListUsers returns every user, admins first.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := call(ctx, s.sender, get("/admin/user/all"), &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

// SetAccountStatus changes a user's account status.
func (s *AdminService) SetAccountStatus(ctx context.Context, userID string, status domain.AccountStatus) (*domain.User, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: account status %q", ErrInvalidArgument, status)
	}
	return s.put(ctx, userID, "/account_status/", putAccountStatusRequest{AccountStatus: status})
}

// Ban marks a user as banned.
func (s *AdminService) Ban(ctx context.Context, userID string) (*domain.User, error) {
	return s.put(ctx, userID, "/ban", nil)
}

// Unban reactivates a banned user.
func (s *AdminService) Unban(ctx context.Context, userID string) (*domain.User, error) {
	return s.put(ctx, userID, "/unban", nil)
}

// SetDisplayNameLock prevents or allows the user changing their own display name.
func (s *AdminService) SetDisplayNameLock(ctx context.Context, userID string, lock bool) (*domain.User, error) {
	return s.put(ctx, userID, "/display_name_lock", putDisplayNameLockRequest{Lock: lock})
}

// SetDisplayName overrides a user's display name.
func (s *AdminService) SetDisplayName(ctx context.Context, userID, displayName string) (*domain.User, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name is required", ErrInvalidArgument)
	}
	return s.put(ctx, userID, "/display_name", putDisplayNameRequest{DisplayName: displayName})
}

func (s *AdminService) put(ctx context.Context, userID, suffix string, body any) (*domain.User, error) {
	if userID == "" {
		return nil, ErrEmptyID
	}
	var user domain.User
	err := call(ctx, s.sender, transport.Request{
		Method: http.MethodPut,
		Path:   "/admin/user/" + url.PathEscape(userID) + suffix,
		Body:   body,
	}, &user, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
