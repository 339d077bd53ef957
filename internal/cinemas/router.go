package cinemas

import (
	"cinetix/internal/shared/config"
	"cinetix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles cinema-related routes
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

// SetupPublicRoutes registers read-only cinema routes
func (cinemaRouter *Router) SetupPublicRoutes(rg *gin.RouterGroup) {
	cinemas := rg.Group("/cinemas")
	{
		cinemas.GET("", cinemaRouter.controller.ListCinemas)
		cinemas.GET("/:id", cinemaRouter.controller.GetCinema)
	}
}

// SetupAdminRoutes registers cinema management routes
func (cinemaRouter *Router) SetupAdminRoutes(rg *gin.RouterGroup) {
	cinemas := rg.Group("/cinemas")
	cinemas.Use(middleware.JWTAuthWithConfig(cinemaRouter.config))
	cinemas.Use(middleware.RequireAdmin())
	{
		cinemas.POST("", cinemaRouter.controller.CreateCinema)
		cinemas.PUT("/:id", cinemaRouter.controller.UpdateCinema)
		cinemas.DELETE("/:id", cinemaRouter.controller.DeleteCinema)
	}
}
