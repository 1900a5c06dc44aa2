package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jobtrackhq/jobtrack-go/internal/domain/user"
)

// identityKey is where the authentication gate stashes the caller.
const identityKey = "identity"

// SetIdentity records the authenticated caller on the request context.
func SetIdentity(c *gin.Context, id user.Identity) {
	c.Set(identityKey, id)
}

// GetIdentityFromContext returns the authenticated caller.
var GetIdentityFromContext = func(c *gin.Context) (user.Identity, error) {
	val, exists := c.Get(identityKey)
	if !exists {
		return user.Identity{}, errors.New("identity not found in context")
	}

	id, ok := val.(user.Identity)
	if !ok {
		return user.Identity{}, errors.New("invalid identity type in context")
	}

	return id, nil
}
