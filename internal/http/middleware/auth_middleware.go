package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/cookies"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/respond"
)

const identityKey = "identity"

// AuthMW resolves the request identity from the access token cookie
type AuthMW struct {
	authSvc domain.AuthService
	cookies *cookies.Manager
}

// NewAuthMW creates new auth middleware
func NewAuthMW(authSvc domain.AuthService, cm *cookies.Manager) *AuthMW {
	return &AuthMW{
		authSvc: authSvc,
		cookies: cm,
	}
}

// WithAuth requires a valid access token cookie. A stale or invalid cookie
// is cleared before the request is rejected, so clients don't resend it.
func (mw *AuthMW) WithAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookies.AccessToken)
		if err != nil || token == "" {
			respond.AbortError(c, domain.Unauthenticated("Please login."))
			return
		}

		me, err := mw.authSvc.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			mw.cookies.Clear(c)
			respond.AbortError(c, domain.Unauthenticated("Please login."))
			return
		}

		c.Set(identityKey, me)
		c.Next()
	}
}

// WithGuest rejects requests that already carry a live session, for the
// register and login endpoints.
func (mw *AuthMW) WithGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookies.AccessToken)
		if err != nil || token == "" {
			c.Next()
			return
		}

		if _, err := mw.authSvc.ResolveIdentity(c.Request.Context(), token); err == nil {
			respond.AbortError(c, domain.BadRequest("You are already logged in. Please logout first."))
			return
		}

		// dead cookie, let the request through without it
		mw.cookies.Clear(c)
		c.Next()
	}
}

// CurrentUser returns the identity set by WithAuth, or nil
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	me, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return me
}
