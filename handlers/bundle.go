package handlers

import (
	userRepo "careconnect/database/repository/user"
)

// HandlerBundle gathers every handler plus the repositories the route-level
// middleware needs. Assembled once in main and handed to routes.RegisterRoutes.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	User     *UserHandler
	Booking  *BookingHandler
	Resource *ResourceHandler
	Review   *ReviewHandler
	Admin    *AdminHandler
}
