package api

import (
	"net/http"

	db "github.com/banachtech/patent-valuation/db/sqlc"
	"github.com/banachtech/patent-valuation/sensitivity"
	"github.com/banachtech/patent-valuation/util"
	"github.com/banachtech/patent-valuation/valuation"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server serves HTTP requests for the patent valuation service.
type Server struct {
	config   util.Config
	store    db.Store
	service  *valuation.Service
	logger   *logrus.Logger
	metrics  *metrics
	limiters *limiters
	router   *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config util.Config, store db.Store, logger *logrus.Logger) *Server {
	m := newMetrics()
	analyzer := sensitivity.NewAnalyzer(
		sensitivity.WithWorkers(config.SensitivityWorkers),
		sensitivity.WithObserver(m.evaluations.Inc),
	)

	server := &Server{
		config:   config,
		store:    store,
		service:  valuation.NewService(analyzer, logger),
		logger:   logger,
		metrics:  m,
		limiters: newLimiters(config.RateLimit, config.RateBurst),
	}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	if server.config.GinMode != "" {
		gin.SetMode(server.config.GinMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), server.requestLogger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(server.metrics.handler()))

	v1 := router.Group("/v1").Use(server.identify, server.rateLimit)
	v1.POST("/valuation", server.value)
	v1.GET("/history", server.history)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
