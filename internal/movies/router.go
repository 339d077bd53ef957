package movies

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

func (movieRouter *Router) SetupPublicRoutes(rg *gin.RouterGroup) {
	movies := rg.Group("/movies")
	{
		movies.GET("", movieRouter.controller.ListMovies)
		movies.GET("/trending", movieRouter.controller.TrendingMovies)
		movies.GET("/:id", movieRouter.controller.GetMovie)
	}
}

func (movieRouter *Router) SetupAdminRoutes(rg *gin.RouterGroup) {
	movies := rg.Group("/movies")
	movies.Use(middleware.JWTAuthWithConfig(movieRouter.config))
	movies.Use(middleware.RequireAdmin())
	{
		movies.POST("", movieRouter.controller.CreateMovie)
		movies.PUT("/:id", movieRouter.controller.UpdateMovie)
		movies.DELETE("/:id", movieRouter.controller.DeleteMovie)
	}
}
