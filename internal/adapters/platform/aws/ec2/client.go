package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	apperrors "github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// Client is the compute service client of one region.
type Client struct {
	api          API
	errorHandler shared.ErrorHandler
}

var _ ports.ServiceClient = (*Client)(nil)

type Option func(*Client)

func WithAPI(api API) Option {
	return func(c *Client) {
		c.api = api
	}
}

func WithErrorHandler(h shared.ErrorHandler) Option {
	return func(c *Client) {
		c.errorHandler = h
	}
}

// NewClient builds the compute client for cfg.Region. The SDK client can be
// replaced with WithAPI.
func NewClient(cfg aws.Config, errorHandler shared.ErrorHandler, opts ...Option) *Client {
	c := &Client{errorHandler: errorHandler}
	for _, opt := range opts {
		opt(c)
	}
	if c.api == nil {
		c.api = ec2.NewFromConfig(cfg)
	}
	return c
}

func (c *Client) Service() domain.Service {
	return domain.ServiceCompute
}

func (c *Client) Invoke(ctx context.Context, op domain.Operation, args domain.Arguments, token string) (*domain.Page, error) {
	call, ok := operations[op]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotImplemented, fmt.Sprintf("operation '%s' not supported by %s client", op, domain.ServiceCompute))
	}
	out, err := call(ctx, c.api, args, shared.TokenPtr(token))
	if err != nil {
		return nil, c.errorHandler.Handle(ctx, domain.ServiceCompute.String(), op.String(), err)
	}
	page, err := shared.ToPage(out, domain.KeyNextToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeMalformedResponse, fmt.Sprintf("%s %s returned an unreadable response", domain.ServiceCompute, op))
	}
	return page, nil
}
