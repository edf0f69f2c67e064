package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/codejam_client/internal/domain"
)

// GetAllUsers handles GET /admin/user/all.
func (h *Handler) GetAllUsers(c *gin.Context) {
	if !h.verifyAdminAccess(c) {
		return
	}
	c.JSON(http.StatusOK, h.state.Users())
}

// PutAccountStatus handles PUT /admin/user/:id/account_status/.
func (h *Handler) PutAccountStatus(c *gin.Context) {
	var req PutAccountStatusRequest
	if !h.moderate(c, &req) {
		return
	}
	status, err := domain.NewAccountStatus(req.AccountStatus)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	h.updateUser(c, func(u *domain.User) { u.AccountStatus = status })
}

// PutBan handles PUT /admin/user/:id/ban.
func (h *Handler) PutBan(c *gin.Context) {
	if !h.moderate(c, nil) {
		return
	}
	h.updateUser(c, func(u *domain.User) { u.AccountStatus = domain.StatusBanned })
}

// PutUnban handles PUT /admin/user/:id/unban.
func (h *Handler) PutUnban(c *gin.Context) {
	if !h.moderate(c, nil) {
		return
	}
	h.updateUser(c, func(u *domain.User) { u.AccountStatus = domain.StatusActive })
}

// PutDisplayNameLock handles PUT /admin/user/:id/display_name_lock.
func (h *Handler) PutDisplayNameLock(c *gin.Context) {
	var req PutDisplayNameLockRequest
	if !h.moderate(c, &req) {
		return
	}
	h.updateUser(c, func(u *domain.User) { u.LockDisplayName = *req.Lock })
}

// PutDisplayName handles PUT /admin/user/:id/display_name.
func (h *Handler) PutDisplayName(c *gin.Context) {
	var req PutDisplayNameRequest
	if !h.moderate(c, &req) {
		return
	}
	h.updateUser(c, func(u *domain.User) { u.DisplayName = req.DisplayName })
}

// moderate runs the checks shared by every moderation route and binds the
// request body when req is non-nil. Failures have already been written.
func (h *Handler) moderate(c *gin.Context, req any) bool {
	if !h.verifyAdminAccess(c) || !h.verifyUserNotAdmin(c, c.Param("id")) {
		return false
	}
	if req != nil {
		if err := c.ShouldBindJSON(req); err != nil {
			BadRequest(c, "invalid request body")
			return false
		}
	}
	return true
}

func (h *Handler) updateUser(c *gin.Context, fn func(*domain.User)) {
	user, err := h.state.UpdateUser(c.Param("id"), fn)
	if err != nil {
		NotFound(c, "user not found")
		return
	}
	h.log.Infow("user moderated", "user_id", user.ID, "path", c.FullPath())
	c.JSON(http.StatusOK, user)
}
