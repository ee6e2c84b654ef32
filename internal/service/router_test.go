package service_test

import (
	"context"
	"testing"

	"github.com/Behyna/smsrouter/internal/mocks"
	"github.com/Behyna/smsrouter/internal/model"
	"github.com/Behyna/smsrouter/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRouter_Route(t *testing.T) {
	logger := zap.NewNop()
	event := model.InboundEvent{RequestID: "req-1", From: "555-000-1111", Text: "North hello there"}

	t.Run("stages run in order and hand off their outputs", func(t *testing.T) {
		mockResolver := &mocks.ResolverService{}
		mockForwarder := &mocks.ForwarderService{}
		mockHook := &mocks.KeywordHook{}
		svc := service.NewRouterService(mockResolver, newTestEnricher(), mockForwarder, mockHook, logger)

		listID := model.ListID("502-356-0918")
		destination := model.Destination{Number: "NORTH_NUMBER", AreaLabel: "North", MatchedList: &listID}
		expectedBody := "APS Lead (North) — 10/16/26, 3:04 PM CT\nFrom: 555-000-1111\nKeyword: NORTH\nMsg: North hello there"

		var order []string
		mockHook.On("Inspect", mock.Anything, event).Return(true)
		mockResolver.On("Resolve", mock.Anything, event.From).Return(destination).
			Run(func(mock.Arguments) { order = append(order, "resolve") })
		mockForwarder.On("Forward", mock.Anything, model.OutboundMessage{To: "NORTH_NUMBER", Body: expectedBody}).
			Return(model.ForwardResult{Status: model.ForwardStatusAccepted, Code: 1}).
			Run(func(mock.Arguments) { order = append(order, "forward") })

		result := svc.Route(context.Background(), event)

		assert.NoError(t, result.Err)
		assert.True(t, result.Triggered)
		assert.Equal(t, destination, result.Destination)
		assert.Equal(t, expectedBody, result.Message.Body)
		assert.True(t, result.Forward.Accepted())
		assert.Equal(t, []string{"resolve", "forward"}, order)
		mockResolver.AssertExpectations(t)
		mockForwarder.AssertExpectations(t)
	})

	t.Run("keyword hook does not affect routing", func(t *testing.T) {
		mockResolver := &mocks.ResolverService{}
		mockForwarder := &mocks.ForwarderService{}
		mockHook := &mocks.KeywordHook{}
		svc := service.NewRouterService(mockResolver, newTestEnricher(), mockForwarder, mockHook, logger)

		destination := model.Destination{Number: "NORTH_NUMBER", AreaLabel: "North (Fallback)", Fallback: true}
		mockHook.On("Inspect", mock.Anything, event).Return(false)
		mockResolver.On("Resolve", mock.Anything, event.From).Return(destination)
		mockForwarder.On("Forward", mock.Anything, mock.Anything).
			Return(model.ForwardResult{Status: model.ForwardStatusFailed})

		result := svc.Route(context.Background(), event)

		assert.NoError(t, result.Err)
		assert.False(t, result.Triggered)
		assert.Equal(t, "NORTH_NUMBER", result.Message.To)
	})

	t.Run("panicking stage is recovered", func(t *testing.T) {
		mockResolver := &mocks.ResolverService{}
		mockForwarder := &mocks.ForwarderService{}
		mockHook := &mocks.KeywordHook{}
		svc := service.NewRouterService(mockResolver, newTestEnricher(), mockForwarder, mockHook, logger)

		mockHook.On("Inspect", mock.Anything, event).Return(false)
		mockResolver.On("Resolve", mock.Anything, event.From).Panic("resolver exploded")

		result := svc.Route(context.Background(), event)

		assert.ErrorIs(t, result.Err, service.ErrInternal)
		assert.Contains(t, result.Err.Error(), "resolver exploded")
		mockForwarder.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
	})
}
