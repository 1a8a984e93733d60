package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
)

// ServiceClient is a mock of ports.ServiceClient.
type ServiceClient struct {
	mock.Mock
}

func (m *ServiceClient) Service() domain.Service {
	ret := m.Called()
	return ret.Get(0).(domain.Service)
}

func (m *ServiceClient) Invoke(ctx context.Context, op domain.Operation, args domain.Arguments, token string) (*domain.Page, error) {
	ret := m.Called(ctx, op, args, token)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.Page), ret.Error(1)
}

// RateLimiter is a mock of ports.RateLimiter.
type RateLimiter struct {
	mock.Mock
}

func (m *RateLimiter) Wait(ctx context.Context, logger ports.Logger) error {
	ret := m.Called(ctx, logger)
	return ret.Error(0)
}
