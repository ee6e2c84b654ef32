package service

import (
	"context"
	"strings"

	"github.com/Behyna/smsrouter/internal/config"
	"github.com/Behyna/smsrouter/internal/metrics"
	"github.com/Behyna/smsrouter/internal/model"
	"go.uber.org/zap"
)

// KeywordHook is the extension point for a future autoresponder. It only
// reports whether the trigger word was seen and never changes routing.
type KeywordHook interface {
	Inspect(ctx context.Context, event model.InboundEvent) bool
}

type keywordHook struct {
	trigger string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewKeywordHook(cfg *config.Config, logger *zap.Logger, metrics *metrics.Metrics) KeywordHook {
	return &keywordHook{trigger: strings.ToLower(strings.TrimSpace(cfg.Autoresponder.Trigger)), logger: logger,
		metrics: metrics}
}

func (k *keywordHook) Inspect(_ context.Context, event model.InboundEvent) bool {
	if k.trigger == "" || !strings.Contains(strings.ToLower(event.Text), k.trigger) {
		return false
	}

	k.metrics.RecordKeywordTrigger()
	k.logger.Info("Autoresponder trigger detected",
		zap.String("requestID", event.RequestID),
		zap.String("trigger", k.trigger),
		zap.String("from", event.From))

	return true
}
