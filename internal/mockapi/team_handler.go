package mockapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/codejam_client/internal/domain"
)

// CreateTeam handles POST /team/.
func (h *Handler) CreateTeam(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	visibility := domain.VisibilityPublic
	if req.Visibility != "" {
		v, err := domain.NewVisibility(req.Visibility)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		visibility = v
	}

	team, err := h.state.CreateTeam(domain.Team{
		EventID:      req.EventID,
		Name:         req.Name,
		Visibility:   visibility,
		Timezone:     req.Timezone,
		Technologies: req.Technologies,
		Availability: req.Availability,
		Description:  req.Description,
	}, user)
	if err != nil {
		if errors.Is(err, ErrSignupsClosed) || errors.Is(err, ErrEventNotFound) {
			Forbidden(c, "signups are not open for this event")
			return
		}
		InternalError(c, err.Error())
		return
	}

	h.log.Infow("team created", "team_id", team.ID, "owner", user.ID)
	c.JSON(http.StatusCreated, CreateTeamResponse{ID: team.ID})
}

// GetAllTeams handles GET /teams/browse.
func (h *Handler) GetAllTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Teams())
}

// GetUserTeams handles GET /teams.
func (h *Handler) GetUserTeams(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.state.UserTeams(user.ID))
}

// GetTeam handles GET /team/:id.
func (h *Handler) GetTeam(c *gin.Context) {
	team, err := h.state.Team(c.Param("id"))
	if err != nil {
		NotFound(c, "team not found")
		return
	}
	h.sendTeamInfo(c, team)
}

// GetTeamByInvite handles GET /team/invite/:invitecode.
func (h *Handler) GetTeamByInvite(c *gin.Context) {
	team, err := h.state.TeamByInvite(c.Param("invitecode"))
	if err != nil {
		NotFound(c, "team not found")
		return
	}
	h.sendTeamInfo(c, team)
}

func (h *Handler) sendTeamInfo(c *gin.Context, team domain.Team) {
	event, err := h.state.Event(team.EventID)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	members := team.Members
	team.Members = nil
	c.JSON(http.StatusOK, domain.TeamInfo{Team: &team, Event: event, Members: members})
}

// JoinByInvite handles POST /team/:invitecode.
func (h *Handler) JoinByInvite(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	team, err := h.state.TeamByInvite(c.Param("invitecode"))
	if err != nil {
		NotFound(c, "team not found")
		return
	}
	if team.ID != req.TeamID {
		BadRequest(c, ErrInviteMismatch.Error())
		return
	}
	h.addMember(c, team.ID, user)
}

// JoinPublicTeam handles POST /team/join.
func (h *Handler) JoinPublicTeam(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	team, err := h.state.Team(req.TeamID)
	if err != nil {
		NotFound(c, "team not found")
		return
	}
	if team.Visibility == domain.VisibilityPrivate {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	h.addMember(c, team.ID, user)
}

func (h *Handler) addMember(c *gin.Context, teamID string, user domain.User) {
	if err := h.state.AddMember(teamID, user, domain.TeamRoleMember); err != nil {
		if errors.Is(err, ErrAlreadyMember) {
			Conflict(c, err.Error())
			return
		}
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, teamID)
}
