package elbv2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"

	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	apperrors "github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// API is the subset of the Elastic Load Balancing v2 client the snapshot reads from.
type API interface {
	DescribeLoadBalancers(ctx context.Context, params *elb.DescribeLoadBalancersInput, optFns ...func(*elb.Options)) (*elb.DescribeLoadBalancersOutput, error)
	DescribeTargetGroups(ctx context.Context, params *elb.DescribeTargetGroupsInput, optFns ...func(*elb.Options)) (*elb.DescribeTargetGroupsOutput, error)
	DescribeListeners(ctx context.Context, params *elb.DescribeListenersInput, optFns ...func(*elb.Options)) (*elb.DescribeListenersOutput, error)
	DescribeLoadBalancerAttributes(ctx context.Context, params *elb.DescribeLoadBalancerAttributesInput, optFns ...func(*elb.Options)) (*elb.DescribeLoadBalancerAttributesOutput, error)
	DescribeTargetHealth(ctx context.Context, params *elb.DescribeTargetHealthInput, optFns ...func(*elb.Options)) (*elb.DescribeTargetHealthOutput, error)
}

var _ API = (*elb.Client)(nil)

type invoker func(ctx context.Context, api API, args domain.Arguments, marker *string) (any, error)

var operations = map[domain.Operation]invoker{
	domain.OpDescribeLoadBalancers: func(ctx context.Context, api API, _ domain.Arguments, marker *string) (any, error) {
		return api.DescribeLoadBalancers(ctx, &elb.DescribeLoadBalancersInput{Marker: marker})
	},
	domain.OpDescribeTargetGroups: func(ctx context.Context, api API, _ domain.Arguments, marker *string) (any, error) {
		return api.DescribeTargetGroups(ctx, &elb.DescribeTargetGroupsInput{Marker: marker})
	},
	domain.OpDescribeListeners: func(ctx context.Context, api API, a domain.Arguments, marker *string) (any, error) {
		return api.DescribeListeners(ctx, &elb.DescribeListenersInput{LoadBalancerArn: aws.String(a.ResourceID), Marker: marker})
	},
	domain.OpDescribeLoadBalancerAttributes: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribeLoadBalancerAttributes(ctx, &elb.DescribeLoadBalancerAttributesInput{LoadBalancerArn: aws.String(a.ResourceID)})
	},
	domain.OpDescribeTargetHealth: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribeTargetHealth(ctx, &elb.DescribeTargetHealthInput{TargetGroupArn: aws.String(a.ResourceID)})
	},
}

// Client is the load-balancing service client of one region.
type Client struct {
	api          API
	errorHandler shared.ErrorHandler
}

var _ ports.ServiceClient = (*Client)(nil)

// NewClient builds the client for cfg.Region; api overrides the SDK client
// when non-nil.
func NewClient(cfg aws.Config, errorHandler shared.ErrorHandler, api API) *Client {
	if api == nil {
		api = elb.NewFromConfig(cfg)
	}
	return &Client{api: api, errorHandler: errorHandler}
}

func (c *Client) Service() domain.Service {
	return domain.ServiceLoadBalancing
}

// Invoke sends token as the request Marker and reads the next one from NextMarker.
func (c *Client) Invoke(ctx context.Context, op domain.Operation, args domain.Arguments, token string) (*domain.Page, error) {
	call, ok := operations[op]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotImplemented, fmt.Sprintf("operation '%s' not supported by %s client", op, domain.ServiceLoadBalancing))
	}
	out, err := call(ctx, c.api, args, shared.TokenPtr(token))
	if err != nil {
		return nil, c.errorHandler.Handle(ctx, domain.ServiceLoadBalancing.String(), op.String(), err)
	}
	page, err := shared.ToPage(out, domain.KeyNextMarker)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeMalformedResponse, fmt.Sprintf("%s %s returned an unreadable response", domain.ServiceLoadBalancing, op))
	}
	return page, nil
}
