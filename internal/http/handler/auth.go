package handler

import (
	"github.com/gofiber/fiber/v2"

	"scoutportal/internal/service"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates an account and returns {token, user}.
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		res, err := svc.Register(c.UserContext(), req.Email, req.Password, req.Role)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// Login verifies credentials and returns {token, user}.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		res, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}
