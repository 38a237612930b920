package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
)

// repositoryError maps repository errors to a response.
func repositoryError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, repository.ErrStorageDisabled):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, repository.ErrGameNotFound):
		status = fiber.StatusNotFound
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// PlayGame plays a match between two engines and stores it.
func PlayGame(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

	var payload models.PlayGameRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(cfg.Search.MaxDepth); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var start *othello.Game
	if payload.Start != "" {
		var err error
		if start, err = othello.ParseGame(payload.Start); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	black, err := engine.New(payload.BlackDepth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	white, err := engine.New(payload.WhiteDepth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewGameRepository(c)
	if !repo.Enabled() {
		return repositoryError(c, repository.ErrStorageDisabled)
	}

	record, err := match.Play(c.Context(), black, white, start)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	game, err := repo.SaveGame(c.Context(), models.NewGameRecord(record))
	if err != nil {
		return repositoryError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(game)
}

// GetGame returns a stored game.
func GetGame(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)

	game, err := repo.GetGame(c.Context(), c.Params("id"))
	if err != nil {
		return repositoryError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// ListGames returns the most recent games.
func ListGames(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)

	games, err := repo.ListGames(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return repositoryError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(games)
}

// GetGameStats returns outcome counts of the stored games.
func GetGameStats(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)

	stats, err := repo.GetGameStats(c.Context())
	if err != nil {
		return repositoryError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
