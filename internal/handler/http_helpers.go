package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// currentUser pulls the authenticated account out of the session. Every
// core operation receives the user id explicitly from here; nothing below
// the handlers reads ambient session state.
func currentUser(c *gin.Context) (id, email string, ok bool) {
	session := sessions.Default(c)
	rawID, okID := session.Get(sessionKeyUserID).(string)
	rawEmail, _ := session.Get(sessionKeyEmail).(string)
	if !okID || rawID == "" {
		return "", "", false
	}
	return rawID, rawEmail, true
}
