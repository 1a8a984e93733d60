package elbv2

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	awserrors "github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
)

type mockAPI struct {
	API
	mock.Mock
}

func (m *mockAPI) DescribeLoadBalancers(ctx context.Context, params *elb.DescribeLoadBalancersInput, _ ...func(*elb.Options)) (*elb.DescribeLoadBalancersOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*elb.DescribeLoadBalancersOutput)
	return out, args.Error(1)
}

func (m *mockAPI) DescribeListeners(ctx context.Context, params *elb.DescribeListenersInput, _ ...func(*elb.Options)) (*elb.DescribeListenersOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*elb.DescribeListenersOutput)
	return out, args.Error(1)
}

func TestInvoke_MarkerRoundTrip(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	api.On("DescribeLoadBalancers", ctx, mock.MatchedBy(func(in *elb.DescribeLoadBalancersInput) bool {
		return aws.ToString(in.Marker) == "m-1"
	})).Return(&elb.DescribeLoadBalancersOutput{
		LoadBalancers: []elbtypes.LoadBalancer{{LoadBalancerArn: aws.String("arn:lb/1")}},
		NextMarker:    aws.String("m-2"),
	}, nil).Once()

	c := NewClient(aws.Config{}, &awserrors.DefaultErrorHandler{}, api)
	page, err := c.Invoke(ctx, domain.OpDescribeLoadBalancers, domain.Arguments{}, "m-1")

	require.NoError(t, err)
	assert.Equal(t, domain.ServiceLoadBalancing, c.Service())
	assert.Equal(t, "m-2", page.NextToken)
	assert.NotContains(t, page.Document, domain.KeyNextMarker)
	api.AssertExpectations(t)
}

func TestInvoke_ListenersByLoadBalancerArn(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	api.On("DescribeListeners", ctx, mock.MatchedBy(func(in *elb.DescribeListenersInput) bool {
		return aws.ToString(in.LoadBalancerArn) == "arn:lb/1" && in.Marker == nil
	})).Return(&elb.DescribeListenersOutput{}, nil).Once()

	c := NewClient(aws.Config{}, &awserrors.DefaultErrorHandler{}, api)
	_, err := c.Invoke(ctx, domain.OpDescribeListeners, domain.Arguments{ResourceID: "arn:lb/1"}, "")

	require.NoError(t, err)
	api.AssertExpectations(t)
}
