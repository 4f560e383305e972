package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SmsService struct {
	mock.Mock
}

func (m *SmsService) Send(ctx context.Context, recipient, message string) error {
	args := m.Called(ctx, recipient, message)
	return args.Error(0)
}
