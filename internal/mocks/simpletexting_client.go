package mocks

import (
	"context"

	"github.com/Behyna/smsrouter/pkg/simpletexting"
	"github.com/stretchr/testify/mock"
)

type SimpleTextingClient struct {
	mock.Mock
}

func (s *SimpleTextingClient) ListContacts(ctx context.Context, group string) ([]simpletexting.Contact, error) {
	args := s.Called(ctx, group)
	contacts, _ := args.Get(0).([]simpletexting.Contact)
	return contacts, args.Error(1)
}

func (s *SimpleTextingClient) Send(ctx context.Context, phone string, message string) (simpletexting.SendResponse, error) {
	args := s.Called(ctx, phone, message)
	return args.Get(0).(simpletexting.SendResponse), args.Error(1)
}
