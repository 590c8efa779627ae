package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijaz003/Employment-Exchange/internal/apperrors"
	"github.com/ijaz003/Employment-Exchange/internal/auth"
	"github.com/ijaz003/Employment-Exchange/internal/dtos"
	"github.com/ijaz003/Employment-Exchange/internal/middlewares"
	"github.com/ijaz003/Employment-Exchange/internal/models"
	"github.com/ijaz003/Employment-Exchange/internal/services"
)

type UserHandler struct {
	Users  *services.UserService
	Tokens *auth.TokenService
}

func NewUserHandler(users *services.UserService, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{Users: users, Tokens: tokens}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	user, err := h.Users.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.sendToken(c, user, http.StatusCreated, "User registered successfully!")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	user, err := h.Users.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.sendToken(c, user, http.StatusOK, "User logged in successfully!")
}

// Logout clears the cookie unconditionally; there is nothing to invalidate
// server-side.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully!",
	})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// sendToken issues the credential, sets it as an httpOnly cookie and echoes
// it in the body alongside the user, the shape the client stores.
func (h *UserHandler) sendToken(c *gin.Context, user *models.User, status int, message string) {
	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		respondError(c, apperrors.Wrap(err, apperrors.KindInternal, "Internal Server Error"))
		return
	}
	c.SetCookie("token", token, int(h.Tokens.TTL().Seconds()), "/", "", false, true)
	c.JSON(status, gin.H{
		"success": true,
		"user":    user,
		"message": message,
		"token":   token,
	})
}
