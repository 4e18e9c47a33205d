package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/desertfarm/backend/internal/domain"
	"github.com/desertfarm/backend/internal/observability"
	"github.com/desertfarm/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	adviceSvc  *service.AdviceService
	weatherSvc *service.WeatherService
	crops      *service.CropCalendar
	logger     *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(adviceSvc *service.AdviceService, weatherSvc *service.WeatherService, crops *service.CropCalendar, logger *zap.Logger) *Handler {
	return &Handler{
		adviceSvc:  adviceSvc,
		weatherSvc: weatherSvc,
		crops:      crops,
		logger:     logger,
	}
}

func (h *Handler) requestLogger(c *fiber.Ctx) *zap.Logger {
	id, _ := c.Locals("requestid").(string)
	return observability.WithRequestID(h.logger, id)
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	store := "ok"
	if err := h.adviceSvc.Health(c.Context()); err != nil {
		h.requestLogger(c).Warn("history store unhealthy", zap.Error(err))
		store = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "desertfarm-backend",
		"version": "1.0.0",
		"store":   store,
	})
}

// GenerateAdvice validates an advice request and returns generated advice
func (h *Handler) GenerateAdvice(c *fiber.Ctx) error {
	log := h.requestLogger(c)

	req, err := parseAdviceRequest(c.Body())
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid request data",
				"details": verr.Violations,
			})
		}
		log.Error("advice request validation failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate advice")
	}

	outcome, err := h.adviceSvc.GenerateAdvice(c.Context(), req)
	if err != nil {
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			return fiber.NewError(fiber.StatusInternalServerError, genErr.Error())
		}
		log.Error("advice pipeline failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate advice")
	}

	if outcome.PersistErr != nil {
		log.Warn("advice returned without history record",
			zap.String("language", string(req.Language)),
			zap.Error(outcome.PersistErr))
	}

	return c.JSON(outcome.Result)
}

// GetAdviceHistory returns the most recent advice exchanges
func (h *Handler) GetAdviceHistory(c *fiber.Ctx) error {
	limit := domain.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid limit. Must be between 1 and 100")
		}
		limit = n
	}

	records, err := h.adviceSvc.History(c.Context(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLimit) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid limit. Must be between 1 and 100")
		}
		h.requestLogger(c).Error("failed to fetch advice history", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch advice history")
	}
	if records == nil {
		records = []domain.AdviceHistoryRecord{}
	}

	return c.JSON(records)
}

// GetWeather returns current weather for lat/lon
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	lat, lon, ok := coordinates(c)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid latitude or longitude")
	}

	weather, err := h.weatherSvc.GetCurrentWeather(c.Context(), lat, lon)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch weather data")
	}

	return c.JSON(weather)
}

// GetForecast returns the daily forecast for lat/lon
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	lat, lon, ok := coordinates(c)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid latitude or longitude")
	}

	forecast, err := h.weatherSvc.GetForecast(c.Context(), lat, lon)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch forecast data")
	}

	return c.JSON(forecast)
}

// GetCrops returns the crop calendar, optionally filtered by planting month
func (h *Handler) GetCrops(c *fiber.Ctx) error {
	raw := c.Query("month")
	if raw == "" {
		return c.JSON(h.crops.All())
	}

	month, err := strconv.Atoi(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month. Must be between 1 and 12")
	}
	crops, err := h.crops.ByMonth(month)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month. Must be between 1 and 12")
	}

	return c.JSON(crops)
}

// GetCurrentCrops returns the crops planted this month
func (h *Handler) GetCurrentCrops(c *fiber.Ctx) error {
	return c.JSON(h.crops.CurrentSeason())
}

func coordinates(c *fiber.Ctx) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, service.ValidCoordinates(lat, lon)
}
