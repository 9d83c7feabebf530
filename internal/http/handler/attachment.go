package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"propdesk/internal/service"
)

// UploadAttachment stores a file for the record at :id (multipart/form-data, field name: file).
// @Summary Upload attachment
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Owning record ID"
// @Param file formData file true "File"
// @Success 201 {object} model.Attachment
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /units/{id}/attachments [post]
func UploadAttachment(svc service.AttachmentService, entityType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		fh, err := c.FormFile("file")
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
			ct = "application/octet-stream"
		}

		a, err := svc.Upload(c.UserContext(), entityType, id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// ListAttachments lists the files of the record at :id, newest first.
func ListAttachments(svc service.AttachmentService, entityType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		out, err := svc.List(c.UserContext(), entityType, id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": out, "total": len(out)})
	}
}

// GetAttachment returns metadata plus a presigned download URL.
// @Summary Get attachment
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID"
// @Success 200 {object} model.AttachmentLink
// @Failure 404 {object} errorPayload
// @Router /attachments/{id} [get]
func GetAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		out, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}

// DownloadAttachment streams the file through the API for clients that cannot
// reach object storage directly.
func DownloadAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		rc, a, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		c.Set(fiber.HeaderContentType, a.ContentType)
		c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(a.Filename))
		// fasthttp closes rc once the body is written.
		return c.SendStream(rc, int(a.Size))
	}
}

// DeleteAttachment removes the object and its metadata.
func DeleteAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
