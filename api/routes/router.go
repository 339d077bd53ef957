package routes

import (
	"net/http"
	"time"

	"cinetix/internal/auth"
	"cinetix/internal/bookings"
	"cinetix/internal/cinemas"
	"cinetix/internal/movies"
	"cinetix/internal/notifications"
	"cinetix/internal/screens"
	"cinetix/internal/shared/config"
	"cinetix/internal/shared/database"
	"cinetix/internal/showtimes"
	"cinetix/internal/theatres"
	"cinetix/pkg/cache"
	"cinetix/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router wires every domain together. Construction order matters only for
// the bookings/showtimes pair: the showtime service needs the booking
// service for delete reconciliation and hold-aware availability, injected
// after both exist to keep the packages acyclic.
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	bookingJobs *bookings.JobProcessor
	holdStore   *bookings.HoldStore
}

func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	appLogger := logger.GetDefault()
	cacheService := cache.NewService(r.db.GetRedisClient())
	gormDB := r.db.GetPostgreSQL()

	api := engine.Group(r.config.GetAPIBasePath())
	admin := api.Group("/admin")

	// Auth
	authRepo := auth.NewRepository(gormDB)
	authService := auth.NewService(authRepo, r.config)
	authRouter := auth.NewRouter(auth.NewController(authService), r.config)
	authRouter.SetupRoutes(api)

	// Catalog
	cinemaService := cinemas.NewService(cinemas.NewRepository(gormDB))
	cinemaRouter := cinemas.NewRouter(cinemas.NewController(cinemaService), r.config)
	cinemaRouter.SetupPublicRoutes(api)
	cinemaRouter.SetupAdminRoutes(admin)

	theatreService := theatres.NewService(theatres.NewRepository(gormDB))
	theatreRouter := theatres.NewRouter(theatres.NewController(theatreService), r.config)
	theatreRouter.SetupPublicRoutes(api)
	theatreRouter.SetupAdminRoutes(admin)

	screenService := screens.NewService(screens.NewRepository(gormDB))
	screenRouter := screens.NewRouter(screens.NewController(screenService), r.config)
	screenRouter.SetupPublicRoutes(api)
	screenRouter.SetupAdminRoutes(admin)

	movieService := movies.NewService(movies.NewRepository(gormDB), cacheService)
	movieRouter := movies.NewRouter(movies.NewController(movieService), r.config)
	movieRouter.SetupPublicRoutes(api)
	movieRouter.SetupAdminRoutes(admin)

	// Showtimes + bookings
	showtimeService := showtimes.NewService(showtimes.NewRepository(gormDB), cacheService, appLogger)

	r.holdStore = bookings.NewHoldStore(r.db.GetRedisClient())
	bookingService := bookings.NewService(
		bookings.NewRepository(gormDB),
		r.holdStore,
		cacheService,
		r.producer,
		r.config,
		appLogger,
	)

	showtimeService.SetBookingReleaser(bookingService)
	showtimeService.SetHoldReader(bookingService)

	showtimeRouter := showtimes.NewRouter(showtimes.NewController(showtimeService), r.config)
	showtimeRouter.SetupPublicRoutes(api)
	showtimeRouter.SetupAdminRoutes(admin)

	bookingRouter := bookings.NewRouter(bookings.NewController(bookingService), r.config)
	bookingRouter.SetupRoutes(api)
	bookingRouter.SetupAdminRoutes(admin)

	r.bookingJobs = bookings.NewJobProcessor(bookingService, r.config.Booking.SweepInterval)
}

// HoldStore exposes the seat hold store for script preloading.
func (r *Router) HoldStore() *bookings.HoldStore {
	return r.holdStore
}

// BookingJobs exposes the expiry sweep processor for lifecycle management.
func (r *Router) BookingJobs() *bookings.JobProcessor {
	return r.bookingJobs
}

// setupHealthRoutes sets up health check and system status routes.
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinetix-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinetix-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}
