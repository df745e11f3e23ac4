package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"reqtrack/internal/auth"
	"reqtrack/internal/config"
	"reqtrack/internal/db"
	"reqtrack/internal/user"
)

const sessionCookie = "reqtrack_session"

// requireAuth resolves the current principal from the session cookie.
// Checks run in order: signed token, server-side session, then a fresh
// user load so role changes and deletions take effect on the next
// request. Any failure redirects to the login page. With requireAdmin,
// a non-admin is bounced back to the dashboard with a notice rather
// than an error status.
func requireAuth(cfg *config.Config, rdb *redis.Client, requireAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(sessionCookie)
		if err != nil || tokenStr == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		claims, err := auth.ParseJWT(cfg.Server.JWTSecret, tokenStr)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		stored, err := auth.GetSession(rdb, claims.UserID)
		if err != nil || stored != tokenStr {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		var u user.User
		if err := db.DB.First(&u, claims.UserID).Error; err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		// Sliding expiry: activity refreshes the session TTL.
		_ = auth.SetSession(rdb, claims.UserID, tokenStr, cfg.SessionTTL())

		c.Set("currentUser", u)

		if requireAdmin && !u.IsAdmin() {
			setFlash(c, "Not authorized")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) user.User {
	v, _ := c.Get("currentUser")
	u, _ := v.(user.User)
	return u
}
