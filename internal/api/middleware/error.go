package middleware

import (
	"errors"

	"github.com/Behyna/smsrouter/internal/constants"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler acknowledges every error on ackPaths with 200 OK so the webhook
// provider never sees a failure. Other paths get a JSON error body.
func ErrorHandler(logger *zap.Logger, ackPaths ...string) fiber.ErrorHandler {
	ack := make(map[string]struct{}, len(ackPaths))
	for _, path := range ackPaths {
		ack[path] = struct{}{}
	}

	return func(c *fiber.Ctx, err error) error {
		if _, ok := ack[c.Path()]; ok {
			logger.Error("Internal error while handling webhook, acknowledging anyway",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
			return c.Status(fiber.StatusOK).SendString(constants.ResponseOK)
		}

		status := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		code := constants.GetErrorCode(status)
		if status >= fiber.StatusInternalServerError {
			logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
		}

		return c.Status(status).JSON(fiber.Map{
			"code":    code,
			"message": constants.GetErrorMessage(code),
		})
	}
}
