package game

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/start", func(c *fiber.Ctx) error {

		type Req struct {
			PlayerAddress string          `json:"playerAddress"`
			BetAmount     int64           `json:"betAmount"`
			GameID        json.RawMessage `json:"gameId"`
			Seed          json.RawMessage `json:"seed"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "malformed request body"})
		}

		active, terminal, err := service.Start(StartRequest{
			GameID: rawString(body.GameID),
			Player: body.PlayerAddress,
			Bet:    body.BetAmount,
			Seed:   rawString(body.Seed),
		})
		if err != nil {
			return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
		}
		if terminal != nil {
			return c.JSON(terminal)
		}
		return c.JSON(active)
	})

	r.Post("/hit", func(c *fiber.Ctx) error {

		type Req struct {
			GameID json.RawMessage `json:"gameId"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "malformed request body"})
		}

		active, terminal, err := service.Hit(rawString(body.GameID))
		if err != nil {
			return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
		}
		if terminal != nil {
			return c.JSON(terminal)
		}
		return c.JSON(active)
	})

	r.Post("/stand", func(c *fiber.Ctx) error {

		type Req struct {
			GameID json.RawMessage `json:"gameId"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "malformed request body"})
		}

		terminal, err := service.Stand(rawString(body.GameID))
		if err != nil {
			return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(terminal)
	})
}

// rawString accepts a field sent either as a JSON string or as a bare
// number. Chain-side ids and seeds are uint256 values, which clients quote
// inconsistently.
func rawString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if s[0] == '"' {
		var out string
		if err := json.Unmarshal(raw, &out); err == nil {
			return out
		}
	}
	return s
}

func errStatus(err error) int {
	var v *ValidationError
	switch {
	case errors.As(err, &v),
		errors.Is(err, ErrGameExists),
		errors.Is(err, ErrInvalidGame):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrSigning):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
