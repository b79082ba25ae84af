// File: careconnect/handlers/admin.go
package handlers

import (
	"net/http"

	"careconnect/services/booking"
	"careconnect/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	UserService    user.UserService
	BookingService booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, bs booking.BookingService) *AdminHandler {
	return &AdminHandler{
		UserService:    us,
		BookingService: bs,
	}
}

// GetAllUsersHandler returns all users (with sensitive fields excluded).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAllBookingsHandler returns every booking record.
func (ah *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := ah.BookingService.ListAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteUserHandler removes a user account by ID.
func (ah *AdminHandler) DeleteUserHandler(c *gin.Context) {
	userID := c.Param("id")
	if err := ah.UserService.DeleteUser(userID); err != nil {
		zap.L().Error("Failed to delete user", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
