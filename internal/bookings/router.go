package bookings

import (
	"cinetix/internal/shared/config"
	"cinetix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	controller *Controller
	config     *config.Config
}

func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers the authenticated booking routes.
func (bookingRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(bookingRouter.config))
	{
		bookings.POST("", bookingRouter.controller.CreateBooking)
		bookings.POST("/hold", bookingRouter.controller.HoldSeats)
		bookings.DELETE("/hold/:holdId", bookingRouter.controller.ReleaseHold)
		bookings.GET("/:id", bookingRouter.controller.GetBooking)
		bookings.POST("/:id/cancel", bookingRouter.controller.CancelBooking)
		bookings.PATCH("/:id/status", bookingRouter.controller.UpdateStatus)
	}

	userBookings := rg.Group("/users/bookings")
	userBookings.Use(middleware.JWTAuthWithConfig(bookingRouter.config))
	{
		userBookings.GET("", bookingRouter.controller.ListUserBookings)
	}
}

// SetupAdminRoutes registers the admin booking views.
func (bookingRouter *Router) SetupAdminRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(bookingRouter.config))
	bookings.Use(middleware.RequireAdmin())
	{
		bookings.GET("", bookingRouter.controller.ListAllBookings)
	}
}
