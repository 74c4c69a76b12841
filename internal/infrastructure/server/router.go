package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/handler"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/middleware"
)

type Router struct {
	engine          *gin.Engine
	sessionHandler  *handler.SessionHandler
	artifactHandler *handler.ArtifactHandler
	gatherer        prometheus.Gatherer
	logger          *zap.Logger
}

type RouterConfig struct {
	SessionHandler  *handler.SessionHandler
	ArtifactHandler *handler.ArtifactHandler
	// Gatherer is optional; /metrics is only mounted when it is set.
	Gatherer    prometheus.Gatherer
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:          engine,
		sessionHandler:  cfg.SessionHandler,
		artifactHandler: cfg.ArtifactHandler,
		gatherer:        cfg.Gatherer,
		logger:          cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger, "/health", "/metrics"))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if r.gatherer != nil {
		r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	api := r.engine.Group("/api/v1")
	{
		api.GET("/tools", r.sessionHandler.Tools)

		sess := api.Group("/session")
		{
			sess.GET("", r.sessionHandler.Get)
			sess.POST("", r.sessionHandler.Start)
			sess.DELETE("", r.sessionHandler.End)
			sess.POST("/source", r.sessionHandler.Upload)
			sess.PUT("/quality", r.sessionHandler.SetQuality)
			sess.PUT("/dimensions", r.sessionHandler.SetDimensions)
			sess.PUT("/aspect-lock", r.sessionHandler.SetAspectLock)
			sess.POST("/apply", r.sessionHandler.Apply)
			sess.GET("/download", r.sessionHandler.Download)
			sess.POST("/save", r.sessionHandler.Save)
		}

		api.GET("/artifacts/:id", r.artifactHandler.Get)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
