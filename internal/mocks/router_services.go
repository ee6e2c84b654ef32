package mocks

import (
	"context"

	"github.com/Behyna/smsrouter/internal/model"
	"github.com/Behyna/smsrouter/internal/service"
	"github.com/stretchr/testify/mock"
)

type ResolverService struct {
	mock.Mock
}

func (r *ResolverService) Resolve(ctx context.Context, sender string) model.Destination {
	args := r.Called(ctx, sender)
	return args.Get(0).(model.Destination)
}

type EnricherService struct {
	mock.Mock
}

func (e *EnricherService) Enrich(sender, text, areaLabel string) string {
	args := e.Called(sender, text, areaLabel)
	return args.String(0)
}

type ForwarderService struct {
	mock.Mock
}

func (f *ForwarderService) Forward(ctx context.Context, msg model.OutboundMessage) model.ForwardResult {
	args := f.Called(ctx, msg)
	return args.Get(0).(model.ForwardResult)
}

type KeywordHook struct {
	mock.Mock
}

func (k *KeywordHook) Inspect(ctx context.Context, event model.InboundEvent) bool {
	args := k.Called(ctx, event)
	return args.Bool(0)
}

type RouterService struct {
	mock.Mock
}

func (r *RouterService) Route(ctx context.Context, event model.InboundEvent) service.RouteResult {
	args := r.Called(ctx, event)
	return args.Get(0).(service.RouteResult)
}
