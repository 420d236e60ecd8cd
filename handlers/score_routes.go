// handlers/score_routes.go
package handlers

import (
	"errors"
	"log"
	"math"

	"score-leaderboard-service/services"

	"github.com/gofiber/fiber/v2"
)

type submitScoreRequest struct {
	FID      string   `json:"fid"`
	Username string   `json:"username"`
	Score    *float64 `json:"score"`
}

func SetupScoreRoutes(app *fiber.App, scoreService *services.ScoreService) {
	app.Post("/submit-score", func(c *fiber.Ctx) error {
		var req submitScoreRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
		// score must be present and integer-valued (42.0 is fine, 41.5 is not)
		if req.FID == "" || req.Score == nil || *req.Score != math.Trunc(*req.Score) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
		// range-check before the int conversion so huge floats can't overflow
		if *req.Score < 0 || *req.Score > services.MaxScore {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid score"})
		}

		if err := scoreService.Submit(req.FID, req.Username, int(*req.Score)); err != nil {
			return respondScoreError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		entries, err := scoreService.Leaderboard(c.Query("date"))
		if err != nil {
			return respondScoreError(c, err)
		}
		return c.JSON(entries)
	})
}

func respondScoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidPayload):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	case errors.Is(err, services.ErrInvalidScore):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid score"})
	case errors.Is(err, services.ErrTooFast):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too fast"})
	default:
		log.Printf("DB Error handling score request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "db error"})
	}
}
