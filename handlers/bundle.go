package handlers

import (
	"doctorportal/auth"
	userRepo "doctorportal/database/repository/user"
)

// HandlerBundle assembles every route handler plus the dependencies the
// route-level guards need.
type HandlerBundle struct {
	// Guard dependencies.
	TokenManager *auth.TokenManager
	UserRepo     userRepo.UserRepository

	Catalog *CatalogHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	User    *UserHandler
	Doctor  *DoctorHandler
}
