package api

import (
	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// setFlash stores a one-shot notice shown on the next rendered page.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

// takeFlash reads and clears the pending notice, if any.
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
