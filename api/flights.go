package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Domenick1991/flights/internal/domain"
	"github.com/Domenick1991/flights/internal/logger"
	"github.com/Domenick1991/flights/internal/service/flights"
	"github.com/Domenick1991/flights/internal/validator"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service  flights.FlightUseCase
	log      logger.Logger
	basePath string
}

func NewFlightHandler(service flights.FlightUseCase, log logger.Logger) *FlightHandler {
	return &FlightHandler{service: service, log: log}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	h.basePath = router.BasePath()

	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, domain.ErrFlightNotFound) {
		h.log.Warn("flight not found", "id", id, "traceId", traceID(c))
		c.JSON(http.StatusNotFound, messageResponse{Message: flightNotFound(id), TraceID: traceID(c)})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	flight, ok := h.bindFlight(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), flight)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.log.Info("flight created", "id", created.ID, "traceId", traceID(c))
	c.Header("Location", fmt.Sprintf("%s/%d", h.basePath, created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	flight, ok := h.bindFlight(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.service.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			h.updateNotFound(c, id)
			return
		}
		_ = c.Error(err)
		return
	}

	if err := h.service.Update(ctx, id, flight); err != nil {
		// deleted between the lookup and the write
		if errors.Is(err, domain.ErrFlightNotFound) {
			h.updateNotFound(c, id)
			return
		}
		_ = c.Error(err)
		return
	}

	h.log.Info("flight updated", "id", id, "traceId", traceID(c))
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	_, err := h.service.GetByID(ctx, id)
	if err == nil {
		err = h.service.Delete(ctx, id)
	}
	if errors.Is(err, domain.ErrFlightNotFound) {
		h.log.Warn("delete failed, flight not found", "id", id, "traceId", traceID(c))
		c.JSON(http.StatusNotFound, messageResponse{Message: flightNotFound(id), TraceID: traceID(c)})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.log.Info("flight deleted", "id", id, "traceId", traceID(c))
	c.Status(http.StatusNoContent)
}

// search filters on airline, departure and arrival. Missing parameters do not filter.
func (h *FlightHandler) search(c *gin.Context) {
	filter := domain.SearchFilter{
		Airline:   c.Query("airline"),
		Departure: c.Query("departure"),
		Arrival:   c.Query("arrival"),
	}

	result, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) updateNotFound(c *gin.Context, id int64) {
	h.log.Warn("update failed, flight not found", "id", id, "traceId", traceID(c))
	writeProblem(c, Problem{
		Title:    "Flight not found",
		Detail:   flightNotFound(id),
		Status:   http.StatusNotFound,
		Instance: traceID(c),
	})
}

func (h *FlightHandler) parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs := validator.Errors{}
		errs.Add("id", fmt.Sprintf("The value '%s' is not valid.", raw))
		h.badRequest(c, errs)
		return 0, false
	}
	return id, true
}

// bindFlight decodes and validates the request body, answering 400 itself on failure.
func (h *FlightHandler) bindFlight(c *gin.Context) (domain.Flight, bool) {
	var req *flightRequest
	data, err := c.GetRawData()
	if err == nil {
		err = json.Unmarshal(data, &req)
	}
	// a literal null leaves req nil
	if err != nil || req == nil {
		errs := validator.Errors{}
		errs.Add("Body", "A non-empty request body with valid JSON is required.")
		h.badRequest(c, errs)
		return domain.Flight{}, false
	}

	flight, parseErrs := req.toDomain()
	errs := validator.Flight(&flight)
	if len(parseErrs) > 0 {
		if errs == nil {
			errs = validator.Errors{}
		}
		// an unreadable timestamp replaces the "required" message for that field
		for field, msgs := range parseErrs {
			errs[field] = msgs
		}
	}
	if len(errs) > 0 {
		h.badRequest(c, errs)
		return domain.Flight{}, false
	}
	return flight, true
}

func (h *FlightHandler) badRequest(c *gin.Context, errs validator.Errors) {
	h.log.Warn("invalid flight request", "errors", errs, "traceId", traceID(c))
	c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: errs, TraceID: traceID(c)})
}
