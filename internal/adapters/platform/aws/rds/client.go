package rds

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	apperrors "github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// API is the subset of the RDS client the snapshot reads from.
type API interface {
	DescribeDBInstances(ctx context.Context, params *rds.DescribeDBInstancesInput, optFns ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error)
}

var _ API = (*rds.Client)(nil)

// Client is the relational-storage service client of one region.
type Client struct {
	api          API
	errorHandler shared.ErrorHandler
}

var _ ports.ServiceClient = (*Client)(nil)

func NewClient(cfg aws.Config, errorHandler shared.ErrorHandler, api API) *Client {
	if api == nil {
		api = rds.NewFromConfig(cfg)
	}
	return &Client{api: api, errorHandler: errorHandler}
}

func (c *Client) Service() domain.Service {
	return domain.ServiceRelationalStorage
}

// Invoke pages with Marker in both directions.
func (c *Client) Invoke(ctx context.Context, op domain.Operation, _ domain.Arguments, token string) (*domain.Page, error) {
	if op != domain.OpDescribeDBInstances {
		return nil, apperrors.New(apperrors.CodeNotImplemented, fmt.Sprintf("operation '%s' not supported by %s client", op, domain.ServiceRelationalStorage))
	}
	out, err := c.api.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{Marker: shared.TokenPtr(token)})
	if err != nil {
		return nil, c.errorHandler.Handle(ctx, domain.ServiceRelationalStorage.String(), op.String(), err)
	}
	page, err := shared.ToPage(out, domain.KeyMarker)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeMalformedResponse, fmt.Sprintf("%s %s returned an unreadable response", domain.ServiceRelationalStorage, op))
	}
	return page, nil
}
