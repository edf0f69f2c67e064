package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/codejam_client/internal/domain"
)

// GetUser handles GET /user/.
func (h *Handler) GetUser(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// PutProfile handles PUT /user/profile/.
func (h *Handler) PutProfile(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	if user.LockDisplayName {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	var req PutProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	form := domain.FormResponse{Errors: map[string]string{}}
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		form.Errors["DisplayName"] = "required"
		c.JSON(http.StatusBadRequest, form)
		return
	}

	updated, err := h.state.UpdateUser(user.ID, func(u *domain.User) {
		u.DisplayName = displayName
	})
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	form.Data = &updated
	c.JSON(http.StatusOK, form)
}

// Logout handles GET /user/logout.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil {
		h.state.EndSession(token)
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)

	if referer := c.GetHeader("Referer"); referer != "" {
		c.Redirect(http.StatusFound, referer)
		return
	}
	c.Status(http.StatusOK)
}
