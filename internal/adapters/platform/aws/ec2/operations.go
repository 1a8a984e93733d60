package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
)

type invoker func(ctx context.Context, api API, args domain.Arguments, token *string) (any, error)

// operations binds every compute operation the snapshot issues to its SDK call.
// Operations that do not paginate ignore the token.
var operations = map[domain.Operation]invoker{
	domain.OpDescribeAddresses: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{Filters: BuildEC2Filters(a.Filters)})
	},
	domain.OpDescribeAvailabilityZones: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{Filters: BuildEC2Filters(a.Filters)})
	},
	domain.OpDescribeClassicLinkInstances: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeClassicLinkInstances(ctx, &ec2.DescribeClassicLinkInstancesInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeCustomerGateways: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribeCustomerGateways(ctx, &ec2.DescribeCustomerGatewaysInput{Filters: BuildEC2Filters(a.Filters)})
	},
	domain.OpDescribeDhcpOptions: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeDhcpOptions(ctx, &ec2.DescribeDhcpOptionsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeHosts: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeHosts(ctx, &ec2.DescribeHostsInput{Filter: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeInstanceStatus: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeInstanceStatus(ctx, &ec2.DescribeInstanceStatusInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeInstances: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeInternetGateways: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeMovingAddresses: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeMovingAddresses(ctx, &ec2.DescribeMovingAddressesInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeNatGateways: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeNatGateways(ctx, &ec2.DescribeNatGatewaysInput{Filter: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeNetworkAcls: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeNetworkAcls(ctx, &ec2.DescribeNetworkAclsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeNetworkInterfaces: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeNetworkInterfaces(ctx, &ec2.DescribeNetworkInterfacesInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribePlacementGroups: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribePlacementGroups(ctx, &ec2.DescribePlacementGroupsInput{Filters: BuildEC2Filters(a.Filters)})
	},
	domain.OpDescribePrefixLists: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribePrefixLists(ctx, &ec2.DescribePrefixListsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeRegions: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribeRegions(ctx, &ec2.DescribeRegionsInput{Filters: BuildEC2Filters(a.Filters)})
	},
	domain.OpDescribeRouteTables: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeSecurityGroups: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeSubnets: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeTags: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeTags(ctx, &ec2.DescribeTagsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeTransitGatewayAttachments: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeTransitGatewayAttachments(ctx, &ec2.DescribeTransitGatewayAttachmentsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeTransitGatewayRouteTables: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeTransitGatewayRouteTables(ctx, &ec2.DescribeTransitGatewayRouteTablesInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeTransitGatewayVpcAttachments: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeTransitGatewayVpcAttachments(ctx, &ec2.DescribeTransitGatewayVpcAttachmentsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeTransitGateways: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeTransitGateways(ctx, &ec2.DescribeTransitGatewaysInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeVpcClassicLink: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribeVpcClassicLink(ctx, &ec2.DescribeVpcClassicLinkInput{Filters: BuildEC2Filters(a.Filters)})
	},
	domain.OpDescribeVpcClassicLinkDnsSupport: func(ctx context.Context, api API, _ domain.Arguments, token *string) (any, error) {
		return api.DescribeVpcClassicLinkDnsSupport(ctx, &ec2.DescribeVpcClassicLinkDnsSupportInput{NextToken: token})
	},
	domain.OpDescribeVpcEndpointServices: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeVpcEndpointServices(ctx, &ec2.DescribeVpcEndpointServicesInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeVpcEndpoints: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeVpcEndpoints(ctx, &ec2.DescribeVpcEndpointsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeVpcPeeringConnections: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeVpcPeeringConnections(ctx, &ec2.DescribeVpcPeeringConnectionsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeVpcs: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{Filters: BuildEC2Filters(a.Filters), NextToken: token})
	},
	domain.OpDescribeVpnConnections: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribeVpnConnections(ctx, &ec2.DescribeVpnConnectionsInput{Filters: BuildEC2Filters(a.Filters)})
	},
	domain.OpDescribeVpnGateways: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.DescribeVpnGateways(ctx, &ec2.DescribeVpnGatewaysInput{Filters: BuildEC2Filters(a.Filters)})
	},
	domain.OpGetTransitGatewayRouteTablePropagations: func(ctx context.Context, api API, a domain.Arguments, token *string) (any, error) {
		return api.GetTransitGatewayRouteTablePropagations(ctx, &ec2.GetTransitGatewayRouteTablePropagationsInput{
			TransitGatewayRouteTableId: aws.String(a.ResourceID),
			Filters:                    BuildEC2Filters(a.Filters),
			NextToken:                  token,
		})
	},
	domain.OpSearchTransitGatewayRoutes: func(ctx context.Context, api API, a domain.Arguments, _ *string) (any, error) {
		return api.SearchTransitGatewayRoutes(ctx, &ec2.SearchTransitGatewayRoutesInput{
			TransitGatewayRouteTableId: aws.String(a.ResourceID),
			Filters:                    BuildEC2Filters(a.Filters),
		})
	},
}
