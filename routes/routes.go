package routes

import (
	"net/http"
	"time"

	"doctorportal/handlers"
	"doctorportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/service", hb.Catalog.ListServices)
	r.GET("/available", hb.Catalog.GetAvailable)
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authenticated := middleware.Authenticated(hb.TokenManager)

	r.GET("/booking", authenticated, hb.Booking.ListBookings)
	r.POST("/booking", hb.Booking.CreateBooking)
	r.GET("/booking/:id", hb.Booking.GetBookingByID)
	r.PATCH("/booking/:id", authenticated, hb.Booking.PayBooking)
	r.POST("/create-payment-intent", authenticated, hb.Payment.CreatePaymentIntent)
}

// RegisterUserRoutes registers the user account endpoints. Admin
// promotion is admin-gated: any token holder being able to mint admins
// was an accident of the original surface, not intent.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authenticated := middleware.Authenticated(hb.TokenManager)
	adminOnly := middleware.AdminOnly(hb.UserRepo)

	r.GET("/user", hb.User.ListUsers)
	r.PUT("/user/admin/:email", authenticated, adminOnly, hb.User.PromoteAdmin)
	r.PUT("/user/:email", hb.User.UpsertUser)
}

// RegisterDoctorRoutes registers the doctor roster endpoints. Roster
// mutations are admin-gated; the listing stays public.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authenticated := middleware.Authenticated(hb.TokenManager)
	adminOnly := middleware.AdminOnly(hb.UserRepo)

	r.GET("/doctor", hb.Doctor.ListDoctors)
	r.POST("/doctor", authenticated, adminOnly, hb.Doctor.AddDoctor)
	r.DELETE("/doctor/:email", authenticated, adminOnly, hb.Doctor.RemoveDoctor)
}

// RegisterGreetingRoute registers the root greeting endpoint.
func RegisterGreetingRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterGreetingRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
