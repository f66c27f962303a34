package api

import (
	"net/http"
	"path/filepath"

	"github.com/Domenick1991/flights/internal/logger"
	"github.com/Domenick1991/flights/internal/metrics"
	"github.com/Domenick1991/flights/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	FlightsBasePath = "/api/flights"
	swaggerDocFile  = "flights.swagger.json"
	swaggerDocPath  = "/docs/" + swaggerDocFile
	metricsNS       = "flights"
)

type RouterDeps struct {
	Flights flights.FlightUseCase
	Log     logger.Logger
	// Registry receives the HTTP metrics and backs /metrics. A fresh one is used when nil.
	Registry   *prometheus.Registry
	SwaggerDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	engine := gin.New()
	engine.Use(
		TraceID(),
		Metrics(metrics.NewHTTPMetrics(metricsNS, reg)),
		AccessLog(log),
		Recovery(log),
		Errors(log),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	if deps.SwaggerDir != "" {
		engine.StaticFile(swaggerDocPath, filepath.Join(deps.SwaggerDir, swaggerDocFile))
		engine.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(swaggerDocPath))))
	}

	NewFlightHandler(deps.Flights, log).Register(engine.Group(FlightsBasePath))
	return engine
}
