package mockapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handler, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	// Local login stand-in for the OAuth flow
	r.POST("/dev/login/:id", h.Login)

	// User endpoints
	user := r.Group("/user")
	{
		user.GET("/", h.GetUser)
		user.PUT("/profile/", h.PutProfile)
		user.GET("/logout", h.Logout)
	}

	// Event endpoints
	event := r.Group("/event")
	{
		event.GET("/", h.GetEvents)
		event.GET("/active", h.GetActiveEvent)
		event.GET("/statuses", h.GetEventStatuses)
		event.GET("/:id", h.GetEvent)
		event.PUT("/:id", h.PutEvent)
	}

	// Team endpoints
	team := r.Group("/team")
	{
		team.POST("/", h.CreateTeam)
		team.POST("/join", h.JoinPublicTeam)
		team.POST("/:invitecode", h.JoinByInvite)
		team.GET("/:id", h.GetTeam)
		team.GET("/invite/:invitecode", h.GetTeamByInvite)
	}
	r.GET("/teams", h.GetUserTeams)
	r.GET("/teams/browse", h.GetAllTeams)

	// Admin endpoints
	admin := r.Group("/admin/user")
	{
		admin.GET("/all", h.GetAllUsers)
		admin.PUT("/:id/account_status/", h.PutAccountStatus)
		admin.PUT("/:id/ban", h.PutBan)
		admin.PUT("/:id/unban", h.PutUnban)
		admin.PUT("/:id/display_name_lock", h.PutDisplayNameLock)
		admin.PUT("/:id/display_name", h.PutDisplayName)
	}

	return r
}

// RequestLogger logs HTTP requests with method, path, status and duration.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)
		log.Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", float64(dur.Microseconds())/1000.0,
		)
	}
}
