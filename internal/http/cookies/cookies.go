// Package cookies manages the HTTP-only session cookie pair.
package cookies

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cookie names for the session token pair
const (
	AccessToken  = "accessToken"
	RefreshToken = "refreshToken"
)

// Manager sets and clears the session cookies with a single set of
// attributes, so a cleared cookie always matches the one that was set.
type Manager struct {
	secure        bool
	accessMaxAge  int
	refreshMaxAge int
}

// NewManager creates a cookie manager. Secure is off only in development so
// local HTTP clients keep their session.
func NewManager(secure bool, accessMaxAge, refreshMaxAge int) *Manager {
	return &Manager{
		secure:        secure,
		accessMaxAge:  accessMaxAge,
		refreshMaxAge: refreshMaxAge,
	}
}

// SetAccess stores the access token cookie
func (m *Manager) SetAccess(c *gin.Context, token string) {
	m.set(c, AccessToken, token, m.accessMaxAge)
}

// SetRefresh stores the refresh token cookie
func (m *Manager) SetRefresh(c *gin.Context, token string) {
	m.set(c, RefreshToken, token, m.refreshMaxAge)
}

// Clear expires both session cookies
func (m *Manager) Clear(c *gin.Context) {
	m.set(c, AccessToken, "", -1)
	m.set(c, RefreshToken, "", -1)
}

func (m *Manager) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, maxAge, "/", "", m.secure, true)
}
