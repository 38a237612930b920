package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/search"
	"github.com/lk16/reversi/internal/services"
)

func newSearchService(c *fiber.Ctx) *search.Service {
	cfg := c.Locals("config").(*config.ServerConfig)         //nolint: errcheck
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return search.NewServiceFromServices(cfg.Search, services)
}

// Search handles best move requests.
func Search(c *fiber.Ctx) error {
	var payload models.SearchRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	response, err := newSearchService(c).Search(c.Context(), payload)

	var requestErr *search.RequestError
	if errors.As(err, &requestErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
