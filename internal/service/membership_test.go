package service_test

import (
	"context"
	"testing"

	"github.com/Behyna/smsrouter/internal/mocks"
	"github.com/Behyna/smsrouter/internal/model"
	"github.com/Behyna/smsrouter/internal/service"
	"github.com/Behyna/smsrouter/pkg/simpletexting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "502-356-0918", expected: "5023560918"},
		{input: "(502) 356-0918", expected: "5023560918"},
		{input: "5023560918", expected: "5023560918"},
		{input: "+1 (502) 356.0918", expected: "15023560918"},
		{input: "", expected: ""},
		{input: "call me", expected: ""},
		{input: "５０２", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			normalized := service.NormalizePhone(tc.input)
			assert.Equal(t, tc.expected, normalized)
			assert.Equal(t, normalized, service.NormalizePhone(normalized))
		})
	}
}

func TestMembership_IsMember(t *testing.T) {
	logger := zap.NewNop()
	cfg := testConfig()
	listID := model.ListID("502-356-0918")
	hasDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})

	t.Run("punctuation insensitive in every combination", func(t *testing.T) {
		forms := []string{"502-356-0918", "(502) 356-0918", "5023560918"}

		for _, stored := range forms {
			for _, queried := range forms {
				mockClient := &mocks.SimpleTextingClient{}
				svc := service.NewMembershipService(mockClient, cfg, logger, newMetrics())

				mockClient.On("ListContacts", hasDeadline, string(listID)).
					Return([]simpletexting.Contact{{Phone: "555-123-4567"}, {Phone: stored}}, nil)

				result := svc.IsMember(context.Background(), listID, queried)

				assert.True(t, result.Member, "stored %q queried %q", stored, queried)
				assert.NoError(t, result.Err)
				assert.Equal(t, listID, result.ListID)
				mockClient.AssertExpectations(t)
			}
		}
	})

	t.Run("not a member", func(t *testing.T) {
		mockClient := &mocks.SimpleTextingClient{}
		svc := service.NewMembershipService(mockClient, cfg, logger, newMetrics())

		mockClient.On("ListContacts", mock.Anything, string(listID)).
			Return([]simpletexting.Contact{{Phone: "555-123-4567"}, {Phone: ""}}, nil)

		result := svc.IsMember(context.Background(), listID, "502-356-0918")

		assert.False(t, result.Member)
		assert.NoError(t, result.Err)
	})

	t.Run("roster fetch failure counts as empty roster", func(t *testing.T) {
		mockClient := &mocks.SimpleTextingClient{}
		svc := service.NewMembershipService(mockClient, cfg, logger, newMetrics())

		mockClient.On("ListContacts", mock.Anything, string(listID)).
			Return(nil, simpletexting.ErrTimeout)

		result := svc.IsMember(context.Background(), listID, "502-356-0918")

		assert.False(t, result.Member)
		assert.ErrorIs(t, result.Err, simpletexting.ErrTimeout)
	})

	t.Run("empty sender never matches and skips the lookup", func(t *testing.T) {
		mockClient := &mocks.SimpleTextingClient{}
		svc := service.NewMembershipService(mockClient, cfg, logger, newMetrics())

		result := svc.IsMember(context.Background(), listID, "---")

		assert.False(t, result.Member)
		assert.ErrorIs(t, result.Err, service.ErrEmptySender)
		mockClient.AssertNotCalled(t, "ListContacts", mock.Anything, mock.Anything)
	})

	t.Run("every call refetches the roster", func(t *testing.T) {
		mockClient := &mocks.SimpleTextingClient{}
		svc := service.NewMembershipService(mockClient, cfg, logger, newMetrics())

		mockClient.On("ListContacts", mock.Anything, string(listID)).
			Return([]simpletexting.Contact{{Phone: "5023560918"}}, nil)

		svc.IsMember(context.Background(), listID, "5023560918")
		svc.IsMember(context.Background(), listID, "5023560918")

		mockClient.AssertNumberOfCalls(t, "ListContacts", 2)
	})
}
