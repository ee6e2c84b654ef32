package service

import (
	"context"
	"time"

	"github.com/Behyna/smsrouter/internal/constants"
	"github.com/Behyna/smsrouter/internal/metrics"
	"github.com/Behyna/smsrouter/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ResolverService interface {
	Resolve(ctx context.Context, sender string) model.Destination
}

type resolver struct {
	membership MembershipService
	routing    model.Routing
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewResolverService(membership MembershipService, routing model.Routing, logger *zap.Logger,
	metrics *metrics.Metrics) ResolverService {
	return &resolver{membership: membership, routing: routing, logger: logger, metrics: metrics}
}

// Resolve checks every configured list concurrently and waits for all of them.
// The earliest configured list the sender belongs to wins; with no match the
// fallback binding is used and labelled as such.
func (r *resolver) Resolve(ctx context.Context, sender string) model.Destination {
	start := time.Now()
	results := make([]model.MembershipResult, len(r.routing.Lists))

	var g errgroup.Group
	for i, binding := range r.routing.Lists {
		g.Go(func() error {
			results[i] = r.membership.IsMember(ctx, binding.ListID, sender)
			return nil
		})
	}
	_ = g.Wait()

	destination := r.selectDestination(results)
	r.metrics.RecordRoutingDecision(destination.AreaLabel, destination.Fallback, time.Since(start))

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}

	r.logger.Info("Destination resolved",
		zap.String("sender", sender),
		zap.String("area", destination.AreaLabel),
		zap.String("to", destination.Number),
		zap.Bool("fallback", destination.Fallback),
		zap.Int("listsChecked", len(results)),
		zap.Int("lookupFailures", failed),
		zap.Duration("duration", time.Since(start)))

	return destination
}

func (r *resolver) selectDestination(results []model.MembershipResult) model.Destination {
	for i, result := range results {
		if !result.Member {
			continue
		}

		binding := r.routing.Lists[i]
		listID := binding.ListID
		return model.Destination{Number: binding.Number, AreaLabel: binding.Label, MatchedList: &listID}
	}

	return model.Destination{
		Number:    r.routing.Fallback.Number,
		AreaLabel: r.routing.Fallback.Label + constants.FallbackLabelSuffix,
		Fallback:  true,
	}
}
