package domain

import "fmt"

// Role is the platform-wide role of a user.
type Role string

// RoleAdmin grants access to the /admin routes.
const RoleAdmin Role = "ADMIN"

// AccountStatus represents the moderation state of a user account.
type AccountStatus string

// Account status constants.
const (
	StatusActive AccountStatus = "ACTIVE"
	StatusBanned AccountStatus = "BANNED"
)

// NewAccountStatus creates a new AccountStatus with validation.
// Returns an error if the status is invalid.
func NewAccountStatus(s string) (AccountStatus, error) {
	status := AccountStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid account status: %s (must be one of: %s, %s)", s, StatusActive, StatusBanned)
	}
	return status, nil
}

// IsValid checks if the status is valid.
func (s AccountStatus) IsValid() bool {
	return s == StatusActive || s == StatusBanned
}

// User is the server-owned account record cached by the client.
type User struct {
	ID              string        `json:"Id"`
	DisplayName     string        `json:"DisplayName"`
	Role            Role          `json:"Role"`
	ServiceName     string        `json:"ServiceName"`
	ServiceUserID   string        `json:"ServiceUserId"`
	ServiceUserName string        `json:"ServiceUserName"`
	AvatarURL       *string       `json:"AvatarUrl"`
	AccountStatus   AccountStatus `json:"AccountStatus"`
	LockDisplayName bool          `json:"LockDisplayName"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// FormResponse is returned by profile updates: the saved user or per-field validation errors.
type FormResponse struct {
	Data   *User             `json:"Data"`
	Errors map[string]string `json:"Errors"`
}
