package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/driving-records/internal/validation"
	apperrors "github.com/spec-kit/driving-records/pkg/util/errorutil"
)

// parseBody decodes the request body into dst. An empty body leaves dst zero so
// that field validation reports what is missing.
func parseBody(c *fiber.Ctx, dst any, invalidMessage string) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewInvalidPayload(invalidMessage, validation.DecodeViolations(err))
	}
	return nil
}
