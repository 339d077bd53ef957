package showtimes

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

func (showtimeRouter *Router) SetupPublicRoutes(rg *gin.RouterGroup) {
	showtimes := rg.Group("/showtimes")
	{
		showtimes.GET("", showtimeRouter.controller.ListShowtimes)
		showtimes.GET("/:id", showtimeRouter.controller.GetShowtime)
		showtimes.GET("/:id/seats", showtimeRouter.controller.GetAvailability)
		showtimes.POST("/:id/seats/check", showtimeRouter.controller.CheckSeats)
	}
}

func (showtimeRouter *Router) SetupAdminRoutes(rg *gin.RouterGroup) {
	showtimes := rg.Group("/showtimes")
	showtimes.Use(middleware.JWTAuthWithConfig(showtimeRouter.config))
	showtimes.Use(middleware.RequireAdmin())
	{
		showtimes.POST("", showtimeRouter.controller.CreateShowtime)
		showtimes.PUT("/:id", showtimeRouter.controller.UpdateShowtime)
		showtimes.DELETE("/:id", showtimeRouter.controller.DeleteShowtime)
	}
}
