package api

import (
	"github.com/Behyna/smsrouter/internal/api/middleware"
	v1 "github.com/Behyna/smsrouter/internal/api/v1"
	"github.com/Behyna/smsrouter/internal/constants"
	"github.com/Behyna/smsrouter/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const WebhookPath = "/receivesms"

func NewApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               constants.ServiceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger, WebhookPath),
	})
}

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, registry *prometheus.Registry,
	logger *zap.Logger) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.HTTPMetricsMiddleware(m, logger))
	app.Use(middleware.HealthCheckMiddleware(constants.ServiceName))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	app.Post(WebhookPath, handler.ReceiveSMS)
	app.Get(WebhookPath, handler.ReceiveSMS)
}
