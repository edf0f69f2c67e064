package mockapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/codejam_client/internal/domain"
)

// GetActiveEvent handles GET /event/active.
func (h *Handler) GetActiveEvent(c *gin.Context) {
	event := h.state.ActiveEvent()
	if event == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetEvents handles GET /event/.
func (h *Handler) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Events())
}

// GetEvent handles GET /event/:id.
func (h *Handler) GetEvent(c *gin.Context) {
	event, err := h.state.Event(c.Param("id"))
	if err != nil {
		NotFound(c, "event not found")
		return
	}
	c.JSON(http.StatusOK, event)
}

// PutEvent handles PUT /event/:id. Only admins may edit events.
func (h *Handler) PutEvent(c *gin.Context) {
	if !h.verifyAdminAccess(c) {
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(raw) {
		BadRequest(c, "invalid request body")
		return
	}
	event, err := domain.NewEvent(raw)
	if err != nil || event.ID != c.Param("id") {
		BadRequest(c, "event id does not match path")
		return
	}

	if _, err := h.state.Event(event.ID); errors.Is(err, ErrEventNotFound) {
		NotFound(c, "event not found")
		return
	}
	if err := h.state.PutEvent(event); err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetEventStatuses handles GET /event/statuses.
func (h *Handler) GetEventStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Statuses())
}
