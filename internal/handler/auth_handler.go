package handler

import (
	"errors"
	"net/http"

	"github.com/cardfolio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionKeyUserID = "user_id"
	sessionKeyEmail  = "email"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and signs it in.
func (a *API) Register(c *gin.Context) {
	var req credentialsRequest
	if !bindJSON(c, &req, "email and password are required") {
		return
	}

	user, err := a.users.Register(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusConflict, "an account with this email already exists")
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, http.StatusBadRequest, "password must be at least 6 characters")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusBadRequest, "a valid email is required")
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to create account")
		}
		return
	}

	if !a.startSession(c, user.ID, user.Email) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": user.ID, "email": user.Email}})
}

// Login authenticates an account and starts a session.
func (a *API) Login(c *gin.Context) {
	var req credentialsRequest
	if !bindJSON(c, &req, "email and password are required") {
		return
	}

	user, err := a.users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "sign-in failed")
		return
	}

	if !a.startSession(c, user.ID, user.Email) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": user.ID, "email": user.Email}})
}

// Logout clears the session and drops the in-memory draft.
func (a *API) Logout(c *gin.Context) {
	if id, _, ok := currentUser(c); ok {
		a.drafts.Drop(id)
	}

	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func (a *API) startSession(c *gin.Context, userID, email string) bool {
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, userID)
	session.Set(sessionKeyEmail, email)
	if err := session.Save(); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return false
	}
	return true
}

// AuthRequired rejects requests without a signed-in session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := currentUser(c); !ok {
			respondError(c, http.StatusUnauthorized, "sign in required")
			c.Abort()
			return
		}
		c.Next()
	}
}
