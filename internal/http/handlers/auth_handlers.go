package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/cookies"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/middleware"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/respond"
)

// AuthHandlers handles the session lifecycle endpoints
type AuthHandlers struct {
	authSvc domain.AuthService
	cookies *cookies.Manager
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, cm *cookies.Manager) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		cookies: cm,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Gender   string `json:"gender"`
	Address  string `json:"address"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register sends an account verification token; no account exists until the
// token comes back through Activate.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	verifyToken, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Gender:   req.Gender,
		Address:  req.Address,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	message := fmt.Sprintf("A verification email sent to %s. To create account, please verify.", req.Email)
	respond.Success(c, http.StatusOK, message, gin.H{
		"verifyToken": verifyToken,
	})
}

// Activate turns a verification token into an account
func (h *AuthHandlers) Activate(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}
	if req.Token == "" {
		respond.Error(c, domain.NotFound("Token is required."))
		return
	}

	user, err := h.authSvc.Activate(c.Request.Context(), req.Token)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, "User account created successfully.", gin.H{
		"data": user,
	})
}

// Login verifies credentials and sets the session cookie pair
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(c, err)
		return
	}

	h.cookies.SetAccess(c, result.AccessToken)
	h.cookies.SetRefresh(c, result.RefreshToken)

	respond.Success(c, http.StatusOK, "Successfully Login.", gin.H{
		"loginUser": result.User,
	})
}

// Logout clears the session cookies. Issued tokens are not revoked; they
// age out on their own.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	respond.Success(c, http.StatusOK, "User successfully logout.", nil)
}

// Refresh exchanges the refresh token cookie for a fresh access token
func (h *AuthHandlers) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(cookies.RefreshToken)
	if err != nil || refreshToken == "" {
		respond.Error(c, domain.Unauthenticated("refresh token not found"))
		return
	}

	accessToken, err := h.authSvc.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		respond.Error(c, err)
		return
	}

	h.cookies.SetAccess(c, accessToken)

	respond.Success(c, http.StatusOK, "Token refreshed.", gin.H{
		"accessToken": accessToken,
	})
}

// Me returns the logged-in user's own record
func (h *AuthHandlers) Me(c *gin.Context) {
	me := middleware.CurrentUser(c)
	if me == nil {
		respond.Error(c, domain.NotFound("User not found."))
		return
	}

	respond.Success(c, http.StatusOK, "Login user data.", gin.H{
		"data": me,
	})
}
