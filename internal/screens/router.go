package screens

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

func (screenRouter *Router) SetupPublicRoutes(rg *gin.RouterGroup) {
	screens := rg.Group("/screens")
	{
		screens.GET("/:id", screenRouter.controller.GetScreen)
		screens.GET("/:id/seats", screenRouter.controller.ListSeats)
	}
}

func (screenRouter *Router) SetupAdminRoutes(rg *gin.RouterGroup) {
	screens := rg.Group("/screens")
	screens.Use(middleware.JWTAuthWithConfig(screenRouter.config))
	screens.Use(middleware.RequireAdmin())
	{
		screens.GET("", screenRouter.controller.ListScreens)
		screens.POST("", screenRouter.controller.CreateScreen)
		screens.PUT("/:id", screenRouter.controller.UpdateScreen)
		screens.DELETE("/:id", screenRouter.controller.DeleteScreen)
	}
}
