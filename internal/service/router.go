package service

import (
	"context"
	"fmt"

	"github.com/Behyna/smsrouter/internal/model"
	"go.uber.org/zap"
)

type RouterService interface {
	Route(ctx context.Context, event model.InboundEvent) RouteResult
}

type router struct {
	resolver  ResolverService
	enricher  EnricherService
	forwarder ForwarderService
	hook      KeywordHook
	logger    *zap.Logger
}

func NewRouterService(resolver ResolverService, enricher EnricherService, forwarder ForwarderService,
	hook KeywordHook, logger *zap.Logger) RouterService {
	return &router{resolver: resolver, enricher: enricher, forwarder: forwarder, hook: hook, logger: logger}
}

// Route runs resolve, enrich and forward in that order. A panic in any stage
// is recovered and reported on RouteResult.Err.
func (r *router) Route(ctx context.Context, event model.InboundEvent) (result RouteResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result.Err = fmt.Errorf("%w: %v", ErrInternal, rec)
			r.logger.Error("Routing aborted",
				zap.String("requestID", event.RequestID),
				zap.String("from", event.From),
				zap.Error(result.Err))
		}
	}()

	result.Triggered = r.hook.Inspect(ctx, event)

	result.Destination = r.resolver.Resolve(ctx, event.From)
	result.Message = r.buildMessage(event, result.Destination)
	result.Forward = r.forwarder.Forward(ctx, result.Message)

	r.logger.Info("Inbound message routed",
		zap.String("requestID", event.RequestID),
		zap.String("from", event.From),
		zap.String("area", result.Destination.AreaLabel),
		zap.String("to", result.Message.To),
		zap.String("forwardStatus", string(result.Forward.Status)))

	return result
}

func (r *router) buildMessage(event model.InboundEvent, destination model.Destination) model.OutboundMessage {
	return model.OutboundMessage{
		To:   destination.Number,
		Body: r.enricher.Enrich(event.From, event.Text, destination.AreaLabel),
	}
}
