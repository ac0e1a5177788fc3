package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateful/restaurant-admin/internal/auth"
	"github.com/plateful/restaurant-admin/internal/config"
	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
)

const ContextUser = "currentUser"

// CurrentUser returns the authenticated user placed in the context by
// AuthMiddleware or OptionalAuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func resolveUser(db *gorm.DB, cfg *config.Config, token string) (*models.User, error) {
	claims, err := auth.ResolveToken(cfg.JWTSecret, token)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.Where("email = ?", claims.Email).First(&user).Error; err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	return &user, nil
}

// AuthMiddleware is the sole gate in front of every protected
// operation: it resolves the bearer token to a stored user before any
// authorization check runs.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
				Code:    httperr.CodeInvalidCredentials,
				Message: "Could not validate credentials.",
			})
			return
		}

		user, err := resolveUser(db, cfg, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
				Code:    httperr.CodeInvalidCredentials,
				Message: "Could not validate credentials.",
			})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// OptionalAuthMiddleware is used only by login and register to reject
// callers that are already authenticated. An absent or non-Bearer
// header passes through anonymously; a Bearer token that fails
// validation is a hard 403.
func OptionalAuthMiddleware(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		user, err := resolveUser(db, cfg, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.HTTPError{
				Code:    httperr.CodeInvalidCredentials,
				Message: "Invalid authentication credentials.",
			})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}
