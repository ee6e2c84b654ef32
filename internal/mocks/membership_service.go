package mocks

import (
	"context"

	"github.com/Behyna/smsrouter/internal/model"
	"github.com/stretchr/testify/mock"
)

type MembershipService struct {
	mock.Mock
}

func (m *MembershipService) IsMember(ctx context.Context, listID model.ListID, phone string) model.MembershipResult {
	args := m.Called(ctx, listID, phone)
	return args.Get(0).(model.MembershipResult)
}
