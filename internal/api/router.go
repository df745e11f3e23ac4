package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"reqtrack/internal/config"
	"reqtrack/internal/request"
)

func SetupRouter(cfg *config.Config, rdb *redis.Client) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(loadTemplates())

	r.GET("/health", healthHandler)

	// Public
	r.GET("/signup", ShowSignupHandler())
	r.POST("/signup", SignupHandler())
	r.GET("/login", ShowLoginHandler())
	r.POST("/login", LoginHandler(cfg, rdb))

	// Session required
	r.GET("/", requireAuth(cfg, rdb, false), DashboardHandler())
	r.GET("/logout", requireAuth(cfg, rdb, false), LogoutHandler(rdb))
	r.GET("/submit", requireAuth(cfg, rdb, false), ShowSubmitHandler())
	r.POST("/submit", requireAuth(cfg, rdb, false), SubmitHandler())

	// Admin only
	r.GET("/approve/:id", requireAuth(cfg, rdb, true), DecideHandler(request.StatusApproved))
	r.GET("/reject/:id", requireAuth(cfg, rdb, true), DecideHandler(request.StatusRejected))

	return r
}
