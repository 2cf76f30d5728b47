package handlers

import (
	"net/http"
	"time"

	_ "poke_explorer/docs"
	"poke_explorer/internal/logger"
	"poke_explorer/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	statusOK       = "ok"
	welcomeMessage = "Welcome to the Poké-Explorer API"

	errRouteNotFound   = "route not found"
	errInvalidBody     = "invalid request body"
	errNoToken         = "not authorized, no token"
	errInvalidToken    = "not authorized, invalid token"
	errUserNotFound    = "user not found"
	errInternalFailure = "server error"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	historyLimit int
}

// NewHandler constructs a new HTTP handler with dependencies.
// A nil log discards output; historyLimit <= 0 falls back to the service default.
func NewHandler(services *service.Service, log *logger.Logger, historyLimit int) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log, historyLimit: historyLimit}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.welcome)
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)

	// Protected endpoints
	h.registerAPIRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody(errRouteNotFound, ""))
	})

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api", h.authMiddleware)
	{
		pokemon := api.Group("/pokemon")
		{
			pokemon.GET("", h.listPokemon)
			pokemon.GET("/:nameOrId", h.getPokemon)
		}

		search := api.Group("/search")
		{
			search.POST("", h.search)
			search.GET("/history", h.searchHistory)
			search.GET("/live", h.liveSearch)
		}
	}
}

// requestLogger emits one line per request once the handler chain has run.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}

// @Summary      Welcome
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
