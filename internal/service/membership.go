package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Behyna/smsrouter/internal/config"
	"github.com/Behyna/smsrouter/internal/metrics"
	"github.com/Behyna/smsrouter/internal/model"
	"github.com/Behyna/smsrouter/pkg/simpletexting"
	"go.uber.org/zap"
)

type MembershipService interface {
	IsMember(ctx context.Context, listID model.ListID, phone string) model.MembershipResult
}

type membership struct {
	client  simpletexting.Client
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewMembershipService(client simpletexting.Client, cfg *config.Config, logger *zap.Logger,
	metrics *metrics.Metrics) MembershipService {
	return &membership{client: client, timeout: cfg.Routing.LookupTimeout, logger: logger, metrics: metrics}
}

// IsMember fetches the whole roster on every call. A roster that cannot be
// fetched counts as empty; the cause is kept on the result.
func (m *membership) IsMember(ctx context.Context, listID model.ListID, phone string) model.MembershipResult {
	result := model.MembershipResult{ListID: listID}

	target := NormalizePhone(phone)
	if target == "" {
		result.Err = ErrEmptySender
		return result
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	start := time.Now()
	contacts, err := m.client.ListContacts(ctx, string(listID))
	duration := time.Since(start)

	if err != nil {
		m.logger.Warn("Failed to fetch list roster, treating as empty",
			zap.String("list", string(listID)),
			zap.Duration("duration", duration),
			zap.Error(err))
		m.metrics.RecordMembershipLookup(string(listID), simpletexting.ErrorCode(err), duration)

		result.Err = fmt.Errorf("list %s: %w", listID, err)
		return result
	}

	for _, contact := range contacts {
		if NormalizePhone(contact.Phone) == target {
			result.Member = true
			break
		}
	}

	status := "not_member"
	if result.Member {
		status = "member"
	}
	m.metrics.RecordMembershipLookup(string(listID), status, duration)

	m.logger.Debug("List membership checked",
		zap.String("list", string(listID)),
		zap.Int("rosterSize", len(contacts)),
		zap.Bool("member", result.Member),
		zap.Duration("duration", duration))

	return result
}

// NormalizePhone keeps only the ASCII digits of phone.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}
