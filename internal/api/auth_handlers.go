package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"reqtrack/internal/auth"
	"reqtrack/internal/config"
	"reqtrack/internal/db"
	"reqtrack/internal/forms"
	"reqtrack/internal/user"
)

// GET /signup
func ShowSignupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"form":   forms.SignupForm{},
			"errors": forms.Errors(nil),
			"flash":  takeFlash(c),
		})
	}
}

// POST /signup
func SignupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f forms.SignupForm
		_ = c.ShouldBind(&f)
		if errs := forms.Validate(&f); errs != nil {
			c.HTML(http.StatusOK, "signup.html", gin.H{"form": f, "errors": errs, "flash": ""})
			return
		}
		hash, err := user.HashPassword(f.Password)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
				"form": f, "errors": forms.Errors{"form": "Something went wrong"}, "flash": "",
			})
			return
		}
		u := user.User{
			Username:     f.Username,
			Email:        f.Email,
			PasswordHash: hash,
			Role:         user.RoleMember,
		}
		if err := db.DB.Create(&u).Error; err != nil {
			// Uniqueness lives in the storage index, not here.
			errs := forms.Errors{"form": "Could not create account"}
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				errs = forms.Errors{"email": "Email is already registered"}
			}
			c.HTML(http.StatusOK, "signup.html", gin.H{"form": f, "errors": errs, "flash": ""})
			return
		}
		setFlash(c, "Account created. Please log in.")
		c.Redirect(http.StatusSeeOther, "/login")
	}
}

// GET /login
func ShowLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"form":   forms.LoginForm{},
			"errors": forms.Errors(nil),
			"error":  "",
			"flash":  takeFlash(c),
		})
	}
}

// POST /login
func LoginHandler(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f forms.LoginForm
		_ = c.ShouldBind(&f)
		if errs := forms.Validate(&f); errs != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{"form": f, "errors": errs, "error": "", "flash": ""})
			return
		}
		// Unknown email and wrong password produce the same message;
		// the caller learns nothing about which one failed.
		var u user.User
		if err := db.DB.Where("email = ?", f.Email).First(&u).Error; err != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"form": f, "errors": forms.Errors(nil), "error": "Invalid email or password", "flash": "",
			})
			return
		}
		if err := user.CheckPassword(u.PasswordHash, f.Password); err != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"form": f, "errors": forms.Errors(nil), "error": "Invalid email or password", "flash": "",
			})
			return
		}
		token, err := auth.GenerateJWT(cfg.Server.JWTSecret, u.ID, u.Email, string(u.Role), cfg.SessionTTL())
		if err != nil {
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{
				"form": f, "errors": forms.Errors(nil), "error": "Could not establish session", "flash": "",
			})
			return
		}
		_ = auth.SetSession(rdb, u.ID, token, cfg.SessionTTL())
		c.SetCookie(sessionCookie, token, int(cfg.SessionTTL().Seconds()), "/", "", false, true)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// GET /logout
func LogoutHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		_ = auth.DeleteSession(rdb, u.ID)
		c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/login")
	}
}
