package ec2

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	awserrors "github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	apperrors "github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// mockAPI embeds API so only the calls a test exercises need implementing.
type mockAPI struct {
	API
	mock.Mock
}

func (m *mockAPI) DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ec2.DescribeVpcsOutput)
	return out, args.Error(1)
}

func (m *mockAPI) DescribeNatGateways(ctx context.Context, params *ec2.DescribeNatGatewaysInput, _ ...func(*ec2.Options)) (*ec2.DescribeNatGatewaysOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ec2.DescribeNatGatewaysOutput)
	return out, args.Error(1)
}

func (m *mockAPI) SearchTransitGatewayRoutes(ctx context.Context, params *ec2.SearchTransitGatewayRoutesInput, _ ...func(*ec2.Options)) (*ec2.SearchTransitGatewayRoutesOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ec2.SearchTransitGatewayRoutesOutput)
	return out, args.Error(1)
}

type ClientTestSuite struct {
	suite.Suite
	api    *mockAPI
	client *Client
	ctx    context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.api = new(mockAPI)
	s.client = NewClient(aws.Config{Region: "us-east-1"}, &awserrors.DefaultErrorHandler{}, WithAPI(s.api))
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.api.AssertExpectations(s.T())
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestService() {
	s.Equal(domain.ServiceCompute, s.client.Service())
}

func (s *ClientTestSuite) TestInvoke_PassesFiltersAndToken() {
	args := domain.Arguments{Filters: []domain.Filter{{Name: domain.FilterVpcID, Values: []string{"vpc-1"}}}}
	s.api.On("DescribeVpcs", s.ctx, mock.MatchedBy(func(in *ec2.DescribeVpcsInput) bool {
		return aws.ToString(in.NextToken) == "tok-1" &&
			len(in.Filters) == 1 && aws.ToString(in.Filters[0].Name) == "vpc-id"
	})).Return(&ec2.DescribeVpcsOutput{
		Vpcs:      []ec2types.Vpc{{VpcId: aws.String("vpc-1")}},
		NextToken: aws.String("tok-2"),
	}, nil).Once()

	page, err := s.client.Invoke(s.ctx, domain.OpDescribeVpcs, args, "tok-1")

	s.Require().NoError(err)
	s.Equal("tok-2", page.NextToken)
	s.NotContains(page.Document, domain.KeyNextToken)
	s.Len(page.Document["Vpcs"], 1)
}

func (s *ClientTestSuite) TestInvoke_FirstPageSendsNoToken() {
	s.api.On("DescribeVpcs", s.ctx, mock.MatchedBy(func(in *ec2.DescribeVpcsInput) bool {
		return in.NextToken == nil && in.Filters == nil
	})).Return(&ec2.DescribeVpcsOutput{}, nil).Once()

	_, err := s.client.Invoke(s.ctx, domain.OpDescribeVpcs, domain.Arguments{}, "")
	s.NoError(err)
}

func (s *ClientTestSuite) TestInvoke_NatGatewaysUseSingularFilter() {
	args := domain.Arguments{Filters: []domain.Filter{{Name: domain.FilterVpcID, Values: []string{"vpc-9"}}}}
	s.api.On("DescribeNatGateways", s.ctx, mock.MatchedBy(func(in *ec2.DescribeNatGatewaysInput) bool {
		return len(in.Filter) == 1 && in.Filter[0].Values[0] == "vpc-9"
	})).Return(&ec2.DescribeNatGatewaysOutput{}, nil).Once()

	_, err := s.client.Invoke(s.ctx, domain.OpDescribeNatGateways, args, "")
	s.NoError(err)
}

func (s *ClientTestSuite) TestInvoke_StaticRouteSearchCarriesRouteTable() {
	args := domain.Arguments{
		ResourceID: "tgw-rtb-1",
		Filters:    []domain.Filter{{Name: domain.FilterType, Values: []string{"static"}}},
	}
	s.api.On("SearchTransitGatewayRoutes", s.ctx, mock.MatchedBy(func(in *ec2.SearchTransitGatewayRoutesInput) bool {
		return aws.ToString(in.TransitGatewayRouteTableId) == "tgw-rtb-1" && len(in.Filters) == 1
	})).Return(&ec2.SearchTransitGatewayRoutesOutput{AdditionalRoutesAvailable: aws.Bool(false)}, nil).Once()

	page, err := s.client.Invoke(s.ctx, domain.OpSearchTransitGatewayRoutes, args, "")
	s.Require().NoError(err)
	s.Equal(false, page.Document[domain.KeyAdditionalRoutesAvailable])
}

func (s *ClientTestSuite) TestInvoke_ClassifiesSDKErrors() {
	s.api.On("DescribeVpcs", s.ctx, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "UnauthorizedOperation"}).Once()

	_, err := s.client.Invoke(s.ctx, domain.OpDescribeVpcs, domain.Arguments{}, "")

	s.Error(err)
	s.Equal(apperrors.CodePlatformAuthError, apperrors.GetCode(err))
}

func (s *ClientTestSuite) TestInvoke_UnknownOperation() {
	_, err := s.client.Invoke(s.ctx, domain.OpDescribeDBInstances, domain.Arguments{}, "")
	s.Equal(apperrors.CodeNotImplemented, apperrors.GetCode(err))
}
