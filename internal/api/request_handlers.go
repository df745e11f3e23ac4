package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"reqtrack/internal/db"
	"reqtrack/internal/forms"
	"reqtrack/internal/request"
)

// GET /
func DashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		var (
			reqs []request.Request
			err  error
		)
		if u.IsAdmin() {
			reqs, err = request.ListAll(db.DB)
		} else {
			reqs, err = request.ListOwnedBy(db.DB, u.ID)
		}
		if err != nil {
			c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{
				"user": u, "isAdmin": u.IsAdmin(), "requests": reqs,
				"error": "Could not load requests", "flash": takeFlash(c),
			})
			return
		}
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"user": u, "isAdmin": u.IsAdmin(), "requests": reqs,
			"error": "", "flash": takeFlash(c),
		})
	}
}

// GET /submit
func ShowSubmitHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "submit.html", gin.H{
			"form":   forms.RequestForm{},
			"errors": forms.Errors(nil),
			"flash":  takeFlash(c),
		})
	}
}

// POST /submit
func SubmitHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f forms.RequestForm
		_ = c.ShouldBind(&f)
		if errs := forms.Validate(&f); errs != nil {
			c.HTML(http.StatusOK, "submit.html", gin.H{"form": f, "errors": errs, "flash": ""})
			return
		}
		u := currentUser(c)
		req := request.Request{
			Title:       f.Title,
			Description: f.Description,
			Status:      request.StatusPending,
			UserID:      u.ID,
		}
		if err := db.DB.Create(&req).Error; err != nil {
			c.HTML(http.StatusInternalServerError, "submit.html", gin.H{
				"form": f, "errors": forms.Errors{"form": "Could not submit request"}, "flash": "",
			})
			return
		}
		setFlash(c, "Request submitted")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// DecideHandler serves GET /approve/:id and GET /reject/:id behind the
// admin gate. A missing request is a hard not-found, never a blind
// write.
func DecideHandler(verdict request.Status) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
			return
		}
		req, err := request.FindByID(db.DB, uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
			return
		}
		if err != nil {
			c.String(http.StatusInternalServerError, "storage error")
			return
		}
		if err := req.Decide(db.DB, verdict); err != nil {
			c.String(http.StatusInternalServerError, "storage error")
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}
