package mockapi

// PutProfileRequest represents request body for PUT /user/profile/.
type PutProfileRequest struct {
	DisplayName string `json:"DisplayName"`
}

// CreateTeamRequest represents request body for POST /team/.
type CreateTeamRequest struct {
	EventID      string            `json:"EventId" binding:"required"`
	Name         string            `json:"Name" binding:"required"`
	Visibility   string            `json:"Visibility"`
	Availability string            `json:"Availability"`
	Description  string            `json:"Description"`
	Technologies string            `json:"Technologies"`
	Timezone     string            `json:"Timezone"`
}

// InviteRequest represents request body for POST /team/:invitecode.
type InviteRequest struct {
	TeamID     string `json:"teamId" binding:"required"`
	InviteCode string `json:"inviteCode"`
}

// JoinRequest represents request body for POST /team/join.
type JoinRequest struct {
	TeamID string `json:"teamId" binding:"required"`
}

// PutAccountStatusRequest represents request body for PUT /admin/user/:id/account_status/.
type PutAccountStatusRequest struct {
	AccountStatus string `json:"AccountStatus" binding:"required"`
}

// PutDisplayNameRequest represents request body for PUT /admin/user/:id/display_name.
type PutDisplayNameRequest struct {
	DisplayName string `json:"DisplayName" binding:"required"`
}

// PutDisplayNameLockRequest represents request body for PUT /admin/user/:id/display_name_lock.
type PutDisplayNameLockRequest struct {
	Lock *bool `json:"Lock" binding:"required"`
}
