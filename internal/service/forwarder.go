package service

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/smsrouter/internal/config"
	"github.com/Behyna/smsrouter/internal/metrics"
	"github.com/Behyna/smsrouter/internal/model"
	"github.com/Behyna/smsrouter/pkg/simpletexting"
	"go.uber.org/zap"
)

type ForwarderService interface {
	Forward(ctx context.Context, msg model.OutboundMessage) model.ForwardResult
}

type forwarder struct {
	client  simpletexting.Client
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewForwarderService(client simpletexting.Client, cfg *config.Config, logger *zap.Logger,
	metrics *metrics.Metrics) ForwarderService {
	return &forwarder{client: client, timeout: cfg.Routing.SendTimeout, logger: logger, metrics: metrics}
}

// Forward sends msg once. Failures are logged and reported on the result only.
func (f *forwarder) Forward(ctx context.Context, msg model.OutboundMessage) model.ForwardResult {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := f.client.Send(ctx, msg.To, msg.Body)
	duration := time.Since(start)

	result := model.ForwardResult{Status: model.ForwardStatusAccepted, Code: response.Code}
	if err != nil {
		result.Status = model.ForwardStatusFailed
		if errors.Is(err, simpletexting.ErrNotAccepted) {
			result.Status = model.ForwardStatusRejected
		}
		result.Err = errors.Join(ErrForwardFailed, err)
	}

	f.metrics.RecordForward(string(result.Status), duration)

	if result.Err != nil {
		f.logger.Error("Failed to send",
			zap.String("to", msg.To),
			zap.String("status", string(result.Status)),
			zap.Int("providerCode", response.Code),
			zap.String("providerMessage", response.Message),
			zap.Duration("duration", duration),
			zap.Error(err))
		return result
	}

	f.logger.Info("Message forwarded",
		zap.String("to", msg.To),
		zap.Int("providerCode", response.Code),
		zap.Duration("duration", duration))

	return result
}
