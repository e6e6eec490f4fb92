package handler

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"kenshi-webspace/internal/middleware"
	"kenshi-webspace/internal/service/media"
)

const maxImageSize = 10 * 1024 * 1024

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == "" {
		return middleware.Unauthorized("User not authenticated")
	}

	thumbnail, thumbClose, err := openFormFile(c, "thumbnail")
	if err != nil {
		return err
	}
	if thumbClose != nil {
		defer thumbClose()
	}

	coverImage, coverClose, err := openFormFile(c, "coverImage")
	if err != nil {
		return err
	}
	if coverClose != nil {
		defer coverClose()
	}

	if thumbnail == nil && coverImage == nil {
		return middleware.BadRequest("No files received.")
	}

	result, err := h.mediaService.UploadImages(c.Context(), userID, thumbnail, coverImage)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Image uploaded successfully!",
		"thumbnail":  result.Thumbnail,
		"thumb_id":   result.ThumbID,
		"coverImage": result.CoverImage,
		"cover_id":   result.CoverID,
	})
}

// openFormFile returns nil without error when the field is absent; the
// upload accepts thumbnail, cover image, or both.
func openFormFile(c *fiber.Ctx, field string) (*media.UploadFile, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}

	if fileHeader.Size > maxImageSize {
		return nil, nil, middleware.BadRequest("File size must be less than 10MB")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	var reader multipart.File
	reader, err = fileHeader.Open()
	if err != nil {
		return nil, nil, middleware.BadRequest("Failed to read file")
	}

	return &media.UploadFile{
		Reader:      reader,
		Size:        fileHeader.Size,
		ContentType: mimeType,
	}, func() { _ = reader.Close() }, nil
}
