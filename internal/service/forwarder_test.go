package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Behyna/smsrouter/internal/mocks"
	"github.com/Behyna/smsrouter/internal/model"
	"github.com/Behyna/smsrouter/internal/service"
	"github.com/Behyna/smsrouter/pkg/simpletexting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestForwarder_Forward(t *testing.T) {
	logger := zap.NewNop()
	cfg := testConfig()
	msg := model.OutboundMessage{To: "NORTH_NUMBER", Body: "APS Lead (North)"}
	hasDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})

	t.Run("accepted", func(t *testing.T) {
		mockClient := &mocks.SimpleTextingClient{}
		svc := service.NewForwarderService(mockClient, cfg, logger, newMetrics())

		mockClient.On("Send", hasDeadline, msg.To, msg.Body).
			Return(simpletexting.SendResponse{Code: 1, Message: "Message sent"}, nil)

		result := svc.Forward(context.Background(), msg)

		assert.True(t, result.Accepted())
		assert.Equal(t, 1, result.Code)
		assert.NoError(t, result.Err)
		mockClient.AssertExpectations(t)
	})

	t.Run("provider rejected", func(t *testing.T) {
		mockClient := &mocks.SimpleTextingClient{}
		svc := service.NewForwarderService(mockClient, cfg, logger, newMetrics())

		mockClient.On("Send", mock.Anything, msg.To, msg.Body).
			Return(simpletexting.SendResponse{Code: -602}, fmt.Errorf("%w: code -602", simpletexting.ErrNotAccepted))

		result := svc.Forward(context.Background(), msg)

		assert.False(t, result.Accepted())
		assert.Equal(t, model.ForwardStatusRejected, result.Status)
		assert.Equal(t, -602, result.Code)
		assert.ErrorIs(t, result.Err, service.ErrForwardFailed)
		assert.ErrorIs(t, result.Err, simpletexting.ErrNotAccepted)
	})

	t.Run("non-success status", func(t *testing.T) {
		mockClient := &mocks.SimpleTextingClient{}
		svc := service.NewForwarderService(mockClient, cfg, logger, newMetrics())

		mockClient.On("Send", mock.Anything, msg.To, msg.Body).
			Return(simpletexting.SendResponse{}, simpletexting.ErrServerError)

		result := svc.Forward(context.Background(), msg)

		assert.Equal(t, model.ForwardStatusFailed, result.Status)
		assert.ErrorIs(t, result.Err, simpletexting.ErrServerError)
		mockClient.AssertNumberOfCalls(t, "Send", 1)
	})
}
