package middleware

import (
	"context"
	"strings"

	"DocSlot/apperrors"
	"DocSlot/role"
	"DocSlot/token"

	"github.com/gin-gonic/gin"
)

type Verifier interface {
	Verify(ctx context.Context, raw string) (*token.Claims, error)
}

func bearer(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

/*
* Read the bearer token from the Authorization header
* Verify it against the stored tokenVersion
* Put the caller on the context for the handlers after it
 */
func Authenticate(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearer(c.GetHeader("Authorization"))
		if raw == "" {
			WriteError(c, apperrors.ErrUnauthenticated)
			return
		}
		claims, err := v.Verify(c.Request.Context(), raw)
		if err != nil {
			WriteError(c, err)
			return
		}
		setPrincipal(c, role.Principal{UserID: claims.UserID, IsAdmin: claims.IsAdmin})
		c.Next()
	}
}

// Require checks rule against the caller; param names the path parameter
// holding the owner id, or is empty.
func Require(rule role.Rule, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			WriteError(c, apperrors.ErrUnauthenticated)
			return
		}
		target := ""
		if param != "" {
			target = c.Param(param)
		}
		if err := rule(p, target); err != nil {
			WriteError(c, err)
			return
		}
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc { return Require(role.AdminOnly, "") }

func SelfOnly(param string) gin.HandlerFunc { return Require(role.SelfOnly, param) }

func SelfOrAdmin(param string) gin.HandlerFunc { return Require(role.SelfOrAdmin, param) }
