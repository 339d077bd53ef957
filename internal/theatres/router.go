package theatres

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

func (theatreRouter *Router) SetupPublicRoutes(rg *gin.RouterGroup) {
	theatres := rg.Group("/theatres")
	{
		theatres.GET("", theatreRouter.controller.ListTheatres)
		theatres.GET("/:id", theatreRouter.controller.GetTheatre)
	}
}

func (theatreRouter *Router) SetupAdminRoutes(rg *gin.RouterGroup) {
	theatres := rg.Group("/theatres")
	theatres.Use(middleware.JWTAuthWithConfig(theatreRouter.config))
	theatres.Use(middleware.RequireAdmin())
	{
		theatres.POST("", theatreRouter.controller.CreateTheatre)
		theatres.PUT("/:id", theatreRouter.controller.UpdateTheatre)
		theatres.DELETE("/:id", theatreRouter.controller.DeleteTheatre)
	}
}
