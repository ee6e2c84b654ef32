package main

import (
	"context"

	"github.com/Behyna/smsrouter/internal/api"
	v1 "github.com/Behyna/smsrouter/internal/api/v1"
	"github.com/Behyna/smsrouter/internal/config"
	"github.com/Behyna/smsrouter/internal/metrics"
	"github.com/Behyna/smsrouter/internal/model"
	"github.com/Behyna/smsrouter/internal/service"
	"github.com/Behyna/smsrouter/pkg/httpclient"
	"github.com/Behyna/smsrouter/pkg/simpletexting"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			config.NewRouting,
			zap.NewProduction,
			metrics.NewRegistry,
			metrics.NewMetrics,
			metrics.NewSystemCollector,
			NewSimpleTextingClient,

			service.NewMembershipService,
			service.NewResolverService,
			service.NewEnricherService,
			service.NewForwarderService,
			service.NewKeywordHook,
			service.NewRouterService,

			v1.NewHandler,
			api.NewApp,
		),
		fx.Invoke(startServer, startCollector),
	).Run()
}

func NewSimpleTextingClient(cfg *config.Config) simpletexting.Client {
	return simpletexting.NewClient(cfg.Provider, httpclient.NewHTTPClient(cfg.Provider.Timeout))
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, registry *prometheus.Registry,
	routing model.Routing, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m, registry, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Address()); err != nil {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			logger.Info("SMS router started",
				zap.String("address", cfg.API.Address()),
				zap.String("marketingNumber", cfg.Routing.MarketingNumber),
				zap.Int("lists", len(routing.Lists)),
				zap.String("fallback", routing.Fallback.Label))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := app.ShutdownWithContext(ctx)
			_ = logger.Sync()
			return err
		},
	})
}

func startCollector(collector *metrics.SystemCollector, cfg *config.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(cfg.Metrics.SystemInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return nil
		},
	})
}
