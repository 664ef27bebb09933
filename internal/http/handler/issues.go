package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"scoutportal/internal/service"
)

// issueInputFromForm collects the metadata fields of a multipart issue upload.
func issueInputFromForm(c *fiber.Ctx) service.IssueInput {
	in := service.IssueInput{
		Number:      c.FormValue("number"),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		CoverImage:  c.FormValue("coverImage"),
	}
	if raw := c.FormValue("publishDate"); raw != "" {
		if when, err := time.Parse(time.RFC3339, raw); err == nil {
			in.PublishDate = &when
		}
	}
	return in
}

// ListIssues returns all magazine issues, newest publish date first.
func ListIssues(svc service.MagazineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		issues, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(issues)
	}
}

// CreateIssue accepts a multipart form with an "issueFile" PDF part plus
// metadata fields and creates a new issue.
func CreateIssue(svc service.MagazineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("issueFile")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/pdf"
		}

		issue, err := svc.Create(c.UserContext(), f, issueInputFromForm(c), fh.Filename, ct, fh.Size)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(issue)
	}
}

// UpdateIssue replaces an issue's metadata; the PDF itself is immutable.
func UpdateIssue(svc service.MagazineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.IssueInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		issue, err := svc.UpdateMeta(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(issue)
	}
}

// DownloadIssue streams an issue's PDF and bumps its download counter.
func DownloadIssue(svc service.MagazineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		rc, issue, err := svc.Download(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, issue.MimeType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", issue.OriginalName))
		if issue.SizeBytes > 0 {
			return c.SendStream(rc, int(issue.SizeBytes))
		}
		return c.SendStream(rc)
	}
}

// DeleteIssue removes an issue's PDF and record.
func DeleteIssue(svc service.MagazineService) fiber.Handler {
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
