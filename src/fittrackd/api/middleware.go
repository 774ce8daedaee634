package api

import (
	"net/http"
	"time"

	"github.com/da-maltsev/fit-track/src/common/errors"
	"github.com/da-maltsev/fit-track/src/fittrackd/auth"
	"github.com/gin-gonic/gin"
)

// authRequired is a middleware that requires a valid bearer token resolving
// to an existing user. A missing token and an invalid one produce distinct
// messages; an invalid token and a valid token for a deleted user do not.
func (a *API) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractTokenFromRequest(c)
		if token == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.ErrNotAuthenticated.ToResponse())
			return
		}

		userID, err := a.tokens.ValidateToken(token)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.ErrCredentialsInvalid.ToResponse())
			return
		}

		user, err := a.userRepo.GetByID(userID)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.ErrCredentialsInvalid.ToResponse())
			return
		}

		c.Set(auth.ContextUserKey, user)
		c.Next()
	}
}

// RequestLogger logs method, path, status, and latency for each request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		log.Debug("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client", c.ClientIP(),
		)
	}
}

// CORSMiddleware sets permissive CORS headers and answers preflight requests
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
