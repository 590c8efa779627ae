package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijaz003/Employment-Exchange/internal/auth"
	"github.com/ijaz003/Employment-Exchange/internal/models"
	"github.com/ijaz003/Employment-Exchange/internal/services"
)

const userKey = "currentUser"

type Auth struct {
	tokens *auth.TokenService
	users  *services.UserService
}

func NewAuth(tokens *auth.TokenService, users *services.UserService) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// Authenticate reads the token cookie, verifies it and attaches the loaded
// user to the gin context. Every failure mode is a 401: missing cookie, bad
// or expired token, and a token whose user no longer exists.
func (m *Auth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}
		userID, err := m.tokens.Verify(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}
		user, err := m.users.GetByID(userID)
		if err != nil {
			abortUnauthorized(c)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "User Not Authorized",
	})
}

// CurrentUser returns the actor attached by Authenticate. Handlers behind
// the middleware may rely on it being non-nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
