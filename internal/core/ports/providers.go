package ports

import (
	"context"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
)

//go:generate mockery --name ServiceClient --output ./mocks --outpkg mocks --case underscore

// ServiceClient is the capability exposed by every authenticated sub-client:
// invoke one read operation and return one raw page. token is empty for the
// first page.
type ServiceClient interface {
	Service() domain.Service
	Invoke(ctx context.Context, op domain.Operation, args domain.Arguments, token string) (*domain.Page, error)
}

// ClientFactory yields the service clients of one region. Clients are safe
// for concurrent use.
type ClientFactory interface {
	Clients(region string) ([]ServiceClient, error)
}

// AccessChecker verifies that the configured credentials can reach the API.
type AccessChecker interface {
	CheckAccess(ctx context.Context) (domain.Identity, error)
}

// RateLimiter throttles outgoing API calls.
type RateLimiter interface {
	Wait(ctx context.Context, logger Logger) error
}
