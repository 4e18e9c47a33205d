package http

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler) {
	// Health check
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api")
	{
		// Advice pipeline
		api.Post("/advice", handler.GenerateAdvice)
		api.Get("/advice/history", handler.GetAdviceHistory)

		// Weather (Open-Meteo)
		api.Get("/weather", handler.GetWeather)
		api.Get("/forecast", handler.GetForecast)

		// Crop calendar
		api.Get("/crops", handler.GetCrops)
		api.Get("/crops/current", handler.GetCurrentCrops)
	}
}

// ErrorHandler renders every error as {"error": message}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
