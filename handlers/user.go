package handlers

import (
	"net/http"

	"careconnect/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes registration, authentication and profile endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler creates a new seeker or provider account.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.RegisterUser(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler logs a user in and returns a fresh token.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeHandler returns the authenticated user's profile.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.Service.GetUserByID(userID)
	if err != nil {
		zap.L().Error("failed to fetch user", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateMeHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, err := h.Service.UpdateUser(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteMeHandler removes the authenticated user's account.
func (h *UserHandler) DeleteMeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.DeleteUser(userID); err != nil {
		zap.L().Error("failed to delete user", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// LogoutHandler revokes the authenticated user's current token.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.RevokeAuthToken(userID); err != nil {
		zap.L().Error("failed to revoke token", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
