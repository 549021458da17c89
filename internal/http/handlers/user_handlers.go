package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/respond"
)

// UserHandlers handles account management endpoints
type UserHandlers struct {
	userSvc domain.UserService
	authSvc domain.AuthService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService, authSvc domain.AuthService) *UserHandlers {
	return &UserHandlers{
		userSvc: userSvc,
		authSvc: authSvc,
	}
}

// List returns users matching the request query, paginated
func (h *UserHandlers) List(c *gin.Context) {
	users, pagination, err := h.userSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "User data fetched successfully", gin.H{
		"pagination": pagination,
		"data":       users,
	})
}

// FindByID returns a single user
func (h *UserHandlers) FindByID(c *gin.Context) {
	user, err := h.userSvc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Single user data fetched successfully", gin.H{
		"data": user,
	})
}

// Create lets an admin create an account directly, skipping verification
func (h *UserHandlers) Create(c *gin.Context) {
	var req struct {
		RegisterRequest
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Gender:   req.Gender,
		Address:  req.Address,
	}, req.Role)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, "User created successfully", gin.H{
		"data": user,
	})
}

// UpdateByID patches a user record; the service drops protected fields
func (h *UserHandlers) UpdateByID(c *gin.Context) {
	var set domain.Filter
	if err := c.ShouldBindJSON(&set); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	user, err := h.userSvc.UpdateByID(c.Request.Context(), c.Param("id"), set)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "User data updated successfully", gin.H{
		"data": user,
	})
}

// DeleteByID removes a user account
func (h *UserHandlers) DeleteByID(c *gin.Context) {
	user, err := h.userSvc.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "User deleted successfully", gin.H{
		"data": user,
	})
}

// Ban locks a user out of login
func (h *UserHandlers) Ban(c *gin.Context) {
	user, err := h.userSvc.Ban(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "User banned successfully", gin.H{
		"data": user,
	})
}

// Unban lifts a ban
func (h *UserHandlers) Unban(c *gin.Context) {
	user, err := h.userSvc.Unban(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "User unbanned successfully", gin.H{
		"data": user,
	})
}

// UpdatePassword changes a password after checking the old one
func (h *UserHandlers) UpdatePassword(c *gin.Context) {
	var req struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	user, err := h.userSvc.UpdatePassword(c.Request.Context(), c.Param("id"), req.OldPassword, req.NewPassword)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Password updated successfully", gin.H{
		"data": user,
	})
}

// ForgotPassword issues a short-lived reset token by email
func (h *UserHandlers) ForgotPassword(c *gin.Context) {
	email := c.Param("email")

	resetToken, err := h.authSvc.ForgotPassword(c.Request.Context(), email)
	if err != nil {
		respond.Error(c, err)
		return
	}

	message := fmt.Sprintf("A password reset email sent to %s. To reset password, please verify.", email)
	respond.Success(c, http.StatusOK, message, gin.H{
		"resetToken": resetToken,
	})
}

// ResetPassword sets a new password from a reset token
func (h *UserHandlers) ResetPassword(c *gin.Context) {
	var req struct {
		ResetToken string `json:"resetToken" binding:"required"`
		Password   string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.ResetToken, req.Password); err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Password reset successfully", nil)
}
