package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecolife/ecolife-api/internal/domain/garden"
)

const (
	gardenSessionHeader = "X-Garden-Session"
	gardenSessionKey    = "garden_session"
)

func gardenSessionMiddleware(svc garden.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := svc.Resolve(c.Request.Context(), c.GetHeader(gardenSessionHeader))
		if err != nil {
			abortWithError(c, domainError(err, "not_found", "garden_failed"))
			return
		}
		c.Set(gardenSessionKey, sessionID)
		c.Next()
	}
}

func getSessionID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(gardenSessionKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
