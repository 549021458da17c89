package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/respond"
)

// RequireRole allows the request only when the identity carries one of the
// given roles. Missing identity is unauthenticated, not forbidden.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		me := CurrentUser(c)
		if me == nil {
			respond.AbortError(c, domain.Unauthenticated("Please login."))
			return
		}
		if !slices.Contains(roles, me.Role) {
			respond.AbortError(c, domain.Forbidden("You don't have permission to perform this action"))
			return
		}
		c.Next()
	}
}

// RequireOwnerOrRole allows any authenticated identity whose id matches the
// named route parameter, or one holding an elevated role. Without the
// parameter the elevated roles alone decide.
func RequireOwnerOrRole(param string, elevated ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		me := CurrentUser(c)
		if me == nil {
			respond.AbortError(c, domain.Unauthenticated("Please login."))
			return
		}

		if slices.Contains(elevated, me.Role) {
			c.Next()
			return
		}

		if id := c.Param(param); id != "" && me.ID.Hex() == id {
			c.Next()
			return
		}

		respond.AbortError(c, domain.Forbidden("You don't have permission to perform this action"))
	}
}
