package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Domenick1991/flights/internal/logger"
	"github.com/Domenick1991/flights/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceIDHeader = "X-Request-ID"
	traceIDKey    = "traceId"
	maxTraceIDLen = 128
)

// TraceID assigns every request a correlation id, reusing a caller supplied X-Request-ID.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(TraceIDHeader)
		if id == "" || len(id) > maxTraceIDLen {
			id = uuid.NewString()
		}
		c.Set(traceIDKey, id)
		c.Header(TraceIDHeader, id)
		c.Next()
	}
}

func traceID(c *gin.Context) string {
	return c.GetString(traceIDKey)
}

func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"traceId", traceID(c),
		)
	}
}

func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// Recovery turns a panic into the generic 500 problem body.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}
		writeFault(c, log, err)
	})
}

// Errors renders errors handlers attached with c.Error when nothing was written yet.
func Errors(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		writeFault(c, log, c.Errors.Last().Err)
	}
}

func writeFault(c *gin.Context, log logger.Logger, err error) {
	id := traceID(c)
	log.Error("unhandled exception occurred",
		"traceId", id,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", fmt.Sprintf("%+v", err),
	)
	c.Abort()
	writeProblem(c, Problem{
		Title:    "An unexpected error occurred",
		Detail:   err.Error(),
		Status:   http.StatusInternalServerError,
		Instance: id,
	})
}
