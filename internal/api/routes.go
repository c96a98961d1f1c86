package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qualipharm/qualipharm/internal/api/handlers"
	"github.com/qualipharm/qualipharm/internal/api/middleware"
	"github.com/qualipharm/qualipharm/internal/services"
	"github.com/qualipharm/qualipharm/pkg/metrics"
)

type Router struct {
	engine        *gin.Engine
	logger        *zap.Logger
	metrics       *metrics.Collector
	docHandler    *handlers.DocumentHandler
	reqMiddleware *middleware.RequestMiddleware
}

func NewRouter(logger *zap.Logger, collector *metrics.Collector, docService *services.DocumentService) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	reqMiddleware := middleware.NewRequestMiddleware(logger)
	engine.Use(reqMiddleware.ProcessRequest())
	engine.Use(reqMiddleware.RecoverPanic())

	return &Router{
		engine:        engine,
		logger:        logger,
		metrics:       collector,
		docHandler:    handlers.NewDocumentHandler(docService, logger),
		reqMiddleware: reqMiddleware,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up", "name": "qualipharm"})
	})

	r.engine.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"counters":  r.metrics.Counters(),
			"latencies": r.metrics.Latencies(),
			"sizes":     r.metrics.Sizes(),
		})
	})

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/templates", r.docHandler.ListTemplates)
		v1.GET("/templates/:id", r.docHandler.GetTemplate)
		v1.POST("/templates/:id/draft", r.docHandler.EvaluateDraft)
		v1.GET("/categories", r.docHandler.ListCategories)
		v1.POST("/documents", r.docHandler.CreateDocument)
		v1.POST("/documents/share", r.docHandler.ShareDocument)
		v1.GET("/compilations/:id", r.docHandler.CompileMonth)
		v1.GET("/dashboard/counts", r.docHandler.DashboardCounts)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Run(addr string) error {
	r.logger.Info("Starting HTTP server", zap.String("address", addr))
	return r.engine.Run(addr)
}
