package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"scoutportal/internal/auth"
	"scoutportal/internal/http/middleware"
	"scoutportal/internal/service"
)

// ListCamps returns approved camps only (the public listing).
func ListCamps(svc service.CampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		camps, err := svc.ListApproved(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(camps)
	}
}

// ListAllCamps returns every camp regardless of status (admin view).
func ListAllCamps(svc service.CampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		camps, err := svc.ListAll(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(camps)
	}
}

// GetCamp returns a single camp by id.
func GetCamp(svc service.CampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		camp, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(camp)
	}
}

// CreateCamp records a new camp proposal; the proposer comes from the
// caller's verified claims, never from the body.
func CreateCamp(svc service.CampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CampInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}

		addedBy := ""
		if claims, ok := c.Locals(middleware.ClaimsLocalKey).(*auth.Claims); ok {
			addedBy = claims.UserID
		}

		camp, err := svc.Create(c.UserContext(), in, addedBy)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(camp)
	}
}

// UpdateCamp replaces a camp's fields; the moderation status is untouched.
func UpdateCamp(svc service.CampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.CampInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		camp, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(camp)
	}
}

// DeleteCamp removes a camp by id.
func DeleteCamp(svc service.CampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ApproveCamp makes a camp visible in the public listing.
func ApproveCamp(svc service.CampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		camp, err := svc.Approve(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(camp)
	}
}

// RejectCamp marks a camp proposal as rejected.
func RejectCamp(svc service.CampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		camp, err := svc.Reject(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(camp)
	}
}
