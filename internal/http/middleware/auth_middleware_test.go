package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/cookies"
	"github.com/undead-bacteria/ecommerce-api-men/internal/mocks"
)

func newAuthMWForTest(authSvc domain.AuthService) *AuthMW {
	return NewAuthMW(authSvc, cookies.NewManager(false, 900, 4320000))
}

func withAccessCookie(req *http.Request, token string) {
	req.AddCookie(&http.Cookie{Name: cookies.AccessToken, Value: token})
}

// clearedCookies returns the names of cookies the response expires
func clearedCookies(w *httptest.ResponseRecorder) []string {
	var names []string
	res := w.Result()
	for _, ck := range res.Cookies() {
		if ck.MaxAge < 0 {
			names = append(names, ck.Name)
		}
	}
	return names
}

func TestWithAuth_MissingCookie(t *testing.T) {
	mw := newAuthMWForTest(mocks.NewMockAuthService())

	r := setupRouter()
	r.GET("/me", mw.WithAuth(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please login.")
}

func TestWithAuth_StaleCookieCleared(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.ResolveIdentityFunc = func(ctx context.Context, accessToken string) (*domain.User, error) {
		return nil, domain.ErrTokenExpired
	}
	mw := newAuthMWForTest(authSvc)

	r := setupRouter()
	r.GET("/me", mw.WithAuth(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	withAccessCookie(req, "stale")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.ElementsMatch(t, []string{cookies.AccessToken, cookies.RefreshToken}, clearedCookies(w))
}

func TestWithAuth_SetsIdentity(t *testing.T) {
	me := &domain.User{Email: "asha@example.com", Role: domain.RoleUser, Active: true}
	authSvc := mocks.NewMockAuthService()
	authSvc.ResolveIdentityFunc = func(ctx context.Context, accessToken string) (*domain.User, error) {
		require.Equal(t, "live-token", accessToken)
		return me, nil
	}
	mw := newAuthMWForTest(authSvc)

	var got *domain.User
	r := setupRouter()
	r.GET("/me", mw.WithAuth(), func(c *gin.Context) {
		got = CurrentUser(c)
		okHandler(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	withAccessCookie(req, "live-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "asha@example.com", got.Email)
}

func TestWithGuest_LiveSessionRejected(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.ResolveIdentityFunc = func(ctx context.Context, accessToken string) (*domain.User, error) {
		return &domain.User{Role: domain.RoleUser}, nil
	}
	mw := newAuthMWForTest(authSvc)

	r := setupRouter()
	r.POST("/login", mw.WithGuest(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	withAccessCookie(req, "live-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You are already logged in. Please logout first.")
}

func TestWithGuest_DeadCookiePasses(t *testing.T) {
	mw := newAuthMWForTest(mocks.NewMockAuthService())

	r := setupRouter()
	r.POST("/login", mw.WithGuest(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	withAccessCookie(req, "dead-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []string{cookies.AccessToken, cookies.RefreshToken}, clearedCookies(w))
}

func TestWithGuest_NoCookiePasses(t *testing.T) {
	mw := newAuthMWForTest(mocks.NewMockAuthService())

	r := setupRouter()
	r.POST("/register", mw.WithGuest(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, clearedCookies(w))
}
