package routes

import (
	"net/http"
	"time"

	"careconnect/handlers"
	"careconnect/middleware"
	"careconnect/models"
	"careconnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetMeHandler)
		api.PUT("/me", hb.User.UpdateMeHandler)
		api.DELETE("/me", hb.User.DeleteMeHandler)
		api.POST("/logout", hb.User.LogoutHandler)
	}
}

// RegisterResourceRoutes registers the care resource catalog endpoints.
func RegisterResourceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/resources")
	{
		// Public catalog endpoints.
		api.GET("", hb.Resource.ListResources)
		api.GET("/:id", hb.Resource.GetResource)

		// Endpoints that modify the catalog require a provider account.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleProvider))
		protected.GET("/mine/list", hb.Resource.ListMyResources)
		protected.POST("", hb.Resource.CreateResource)
		protected.PUT("/:id", hb.Resource.UpdateResource)
		protected.DELETE("/:id", hb.Resource.DeleteResource)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RoleSeeker), hb.Booking.CreateBooking)
		api.GET("/mine", hb.Booking.ListMine)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PUT("/:id/confirm", middleware.RequireRole(models.RoleProvider), hb.Booking.ConfirmBooking)
		api.PUT("/:id/cancel", hb.Booking.CancelBooking)
		api.PUT("/:id/complete", middleware.RequireRole(models.RoleProvider), hb.Booking.CompleteBooking)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/provider/:id", hb.Review.ListProviderReviews)
		api.POST("", middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleSeeker), hb.Review.SubmitReview)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
		adminGroup.GET("/bookings", hb.Admin.GetAllBookingsHandler)
		adminGroup.DELETE("/users/:id", hb.Admin.DeleteUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterResourceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
