package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// sessionToken reads the session cookie, falling back to a Bearer header.
func sessionToken(c *gin.Context) string {
	if v, err := c.Cookie(utils.SessionCookieName); err == nil && v != "" {
		return v
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// RequireAuth resolves the session to a stored user and puts it on the context.
func RequireAuth(sessions *utils.SessionManager, identity *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *services.Session
		if tok := sessionToken(c); tok != "" {
			if id, role, err := sessions.Parse(tok); err == nil {
				session = &services.Session{UserID: id, Role: role}
			}
		}

		userID, err := services.RequireAuthenticated(session)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		user, err := identity.Load(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				abortUnauthenticated(c)
				return
			}
			log.Printf("RequireAuth: failed to load user %d: %v", userID, err)
			utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal error")
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole must run after RequireAuth. The role match is exact.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := services.RequireRole(CurrentUser(c), role)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, services.ErrUnauthenticated):
			abortUnauthenticated(c)
		default:
			utils.JSONError(c, http.StatusForbidden, "error.forbidden", role+" access required")
			c.Abort()
		}
	}
}

// CurrentUser returns the authenticated user, or nil on public routes.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

func abortUnauthenticated(c *gin.Context) {
	utils.JSONError(c, http.StatusUnauthorized, "error.unauthenticated", "login required")
	c.Abort()
}
