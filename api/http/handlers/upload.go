package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/nnreact/job-portal/pkg/media"
)

// formFile reads the optional multipart file field. A missing field or a
// non-multipart request yields nil.
func formFile(c *fiber.Ctx, field string, maxBytes int64) (*media.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form.")
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("File is larger than %d MB.", maxBytes>>20))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return &media.Upload{Name: fh.Filename, Data: data}, nil
}
