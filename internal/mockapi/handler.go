// Package mockapi is an in-memory implementation of the CodeJam HTTP API,
// used to exercise the client locally and in tests.
package mockapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mishasvintus/codejam_client/internal/domain"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "codejam"

// Handler serves the API over a State.
type Handler struct {
	state *State
	log   *zap.SugaredLogger
}

// NewHandler creates a new handler.
func NewHandler(state *State, log *zap.SugaredLogger) *Handler {
	return &Handler{state: state, log: log}
}

// sessionUser returns the logged-in user, or false when the request has no valid session.
func (h *Handler) sessionUser(c *gin.Context) (domain.User, bool) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return domain.User{}, false
	}
	return h.state.SessionUser(token)
}

// requireUser writes 401 and returns false when there is no session.
func (h *Handler) requireUser(c *gin.Context) (domain.User, bool) {
	user, ok := h.sessionUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
	}
	return user, ok
}

// verifyAdminAccess writes 401 or 403 unless the session user is an admin.
func (h *Handler) verifyAdminAccess(c *gin.Context) bool {
	user, ok := h.requireUser(c)
	if !ok {
		return false
	}
	if !user.IsAdmin() {
		h.log.Warnw("admin access denied", "user_id", user.ID)
		c.AbortWithStatus(http.StatusForbidden)
		return false
	}
	return true
}

// verifyUserNotAdmin rejects moderation actions targeting an admin account.
func (h *Handler) verifyUserNotAdmin(c *gin.Context, userID string) bool {
	target, err := h.state.User(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			NotFound(c, "user not found")
			return false
		}
		InternalError(c, err.Error())
		return false
	}
	if target.IsAdmin() {
		Forbidden(c, "admin accounts cannot be moderated")
		return false
	}
	return true
}

// Login handles POST /dev/login/:id by starting a session for an existing user.
func (h *Handler) Login(c *gin.Context) {
	token, err := h.state.StartSession(c.Param("id"))
	if err != nil {
		NotFound(c, "user not found")
		return
	}
	user, _ := h.state.SessionUser(token)
	c.SetCookie(SessionCookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, user)
}
