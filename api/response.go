package api

import (
	"fmt"

	"github.com/Domenick1991/flights/internal/validator"
	"github.com/gin-gonic/gin"
)

const problemContentType = "application/problem+json"

type messageResponse struct {
	Message string `json:"message"`
	TraceID string `json:"traceId"`
}

type validationErrorResponse struct {
	Errors  validator.Errors `json:"errors"`
	TraceID string           `json:"traceId"`
}

// Problem is the structured error body used for update misses and unhandled faults.
type Problem struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Status   int    `json:"status"`
	Instance string `json:"instance"`
}

func flightNotFound(id int64) string {
	return fmt.Sprintf("Flight with ID %d not found.", id)
}

func writeProblem(c *gin.Context, p Problem) {
	c.Header("Content-Type", problemContentType)
	c.JSON(p.Status, p)
}
