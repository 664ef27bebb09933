package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"scoutportal/internal/service"
)

// ListNews returns all articles, newest published first.
func ListNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		articles, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(articles)
	}
}

// GetNews returns a single article by id.
func GetNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		article, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(article)
	}
}

// CreateNews publishes a new article.
func CreateNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.NewsInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		article, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(article)
	}
}

// UpdateNews replaces an article's fields.
func UpdateNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.NewsInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		article, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(article)
	}
}

// DeleteNews removes an article by id.
func DeleteNews(svc service.NewsService) fiber.Handler {
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
