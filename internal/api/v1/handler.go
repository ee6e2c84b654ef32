package v1

import (
	"github.com/Behyna/smsrouter/internal/constants"
	"github.com/Behyna/smsrouter/internal/metrics"
	"github.com/Behyna/smsrouter/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	logger  *zap.Logger
	router  service.RouterService
	metrics *metrics.Metrics
}

func NewHandler(logger *zap.Logger, router service.RouterService, metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, router: router, metrics: metrics}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// ReceiveSMS always answers 200. The provider drops webhooks that fail, so
// every outcome, including internal faults, is acknowledged.
func (h *Handler) ReceiveSMS(c *fiber.Ctx) error {
	requestID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	h.logger.Info("Incoming webhook",
		zap.String("requestID", requestID),
		zap.String("method", c.Method()),
		zap.String("contentType", c.Get(fiber.HeaderContentType)),
		zap.ByteString("body", c.Body()))

	request, err := ParseInboundRequest(c)
	if err != nil {
		h.logger.Warn("Failed to parse body",
			zap.String("requestID", requestID),
			zap.Error(err))
	}

	event := request.Event(requestID)
	if event.Inert() {
		h.logger.Info("Ignored event (missing from/text)",
			zap.String("requestID", requestID),
			zap.String("from", event.From),
			zap.Bool("hasText", event.Text != ""))
		h.metrics.RecordInboundEvent(constants.OutcomeIgnored)

		return c.Status(fiber.StatusOK).SendString(constants.ResponseIgnored)
	}

	h.logger.Info("Message received",
		zap.String("requestID", requestID),
		zap.String("from", event.From),
		zap.String("text", event.Text))

	result := h.router.Route(c.UserContext(), event)

	outcome := constants.OutcomeRouted
	if result.Err != nil || !result.Forward.Accepted() {
		outcome = constants.OutcomeFailed
	}
	h.metrics.RecordInboundEvent(outcome)

	return c.Status(fiber.StatusOK).SendString(constants.ResponseOK)
}
