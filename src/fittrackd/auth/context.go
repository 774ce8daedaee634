package auth

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key under which the authenticated user
// is stored by the auth middleware.
const ContextUserKey = "user"

// CurrentUser returns the authenticated user stored in the request context,
// or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *User {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*User)
	if !ok {
		return nil
	}
	return user
}

// ParseID parses a path parameter into a numeric id
func ParseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
