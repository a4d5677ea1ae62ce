package middleware

import (
	"DocSlot/apperrors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateObjectID rejects the request when any named path parameter is not
// a 24 hex character id.
func ValidateObjectID(params ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range params {
			if !primitive.IsValidObjectID(c.Param(p)) {
				WriteError(c, apperrors.ErrInvalidID)
				return
			}
		}
		c.Next()
	}
}
