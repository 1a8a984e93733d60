package service

import "github.com/olusolaa/aws-config-snapshot/internal/core/domain"

type filterKind int

const (
	noFilter filterKind = iota
	vpcFilter
	attachmentVpcFilter
)

type catalogEntry struct {
	category  domain.Category
	operation domain.Operation
	filter    filterKind
}

// computeCatalog is the fixed list of compute categories, in fetch order,
// with the VPC filter each one takes when a VPC restriction is configured.
var computeCatalog = []catalogEntry{
	{domain.CategoryAddresses, domain.OpDescribeAddresses, noFilter},
	{domain.CategoryAvailabilityZones, domain.OpDescribeAvailabilityZones, noFilter},
	{domain.CategoryClassicLinkInstances, domain.OpDescribeClassicLinkInstances, vpcFilter},
	{domain.CategoryCustomerGateways, domain.OpDescribeCustomerGateways, noFilter},
	{domain.CategoryDhcpOptions, domain.OpDescribeDhcpOptions, noFilter},
	{domain.CategoryHosts, domain.OpDescribeHosts, noFilter},
	{domain.CategoryInstanceStatuses, domain.OpDescribeInstanceStatus, noFilter},
	{domain.CategoryInternetGateways, domain.OpDescribeInternetGateways, attachmentVpcFilter},
	{domain.CategoryMovingAddressStatuses, domain.OpDescribeMovingAddresses, noFilter},
	{domain.CategoryNatGateways, domain.OpDescribeNatGateways, vpcFilter},
	{domain.CategoryNetworkAcls, domain.OpDescribeNetworkAcls, vpcFilter},
	{domain.CategoryNetworkInterfaces, domain.OpDescribeNetworkInterfaces, vpcFilter},
	{domain.CategoryPlacementGroups, domain.OpDescribePlacementGroups, noFilter},
	{domain.CategoryPrefixLists, domain.OpDescribePrefixLists, noFilter},
	{domain.CategoryReservations, domain.OpDescribeInstances, vpcFilter},
	{domain.CategoryRouteTables, domain.OpDescribeRouteTables, vpcFilter},
	{domain.CategorySecurityGroups, domain.OpDescribeSecurityGroups, vpcFilter},
	{domain.CategorySubnets, domain.OpDescribeSubnets, vpcFilter},
	{domain.CategoryTags, domain.OpDescribeTags, noFilter},
	{domain.CategoryTransitGatewayAttachments, domain.OpDescribeTransitGatewayAttachments, noFilter},
	{domain.CategoryTransitGatewayRouteTables, domain.OpDescribeTransitGatewayRouteTables, noFilter},
	{domain.CategoryTransitGatewayVpcAttachments, domain.OpDescribeTransitGatewayVpcAttachments, vpcFilter},
	{domain.CategoryTransitGateways, domain.OpDescribeTransitGateways, noFilter},
	{domain.CategoryVpcEndpoints, domain.OpDescribeVpcEndpoints, vpcFilter},
	{domain.CategoryVpcPeeringConnections, domain.OpDescribeVpcPeeringConnections, noFilter},
	{domain.CategoryVpcs, domain.OpDescribeVpcs, vpcFilter},
	{domain.CategoryVpcClassicLink, domain.OpDescribeVpcClassicLink, noFilter},
	{domain.CategoryVpcClassicLinkDnsSupport, domain.OpDescribeVpcClassicLinkDnsSupport, noFilter},
	{domain.CategoryVpcEndpointServices, domain.OpDescribeVpcEndpointServices, noFilter},
	{domain.CategoryVpnConnections, domain.OpDescribeVpnConnections, noFilter},
	{domain.CategoryVpnGateways, domain.OpDescribeVpnGateways, attachmentVpcFilter},
}

func (e catalogEntry) args(vpcIDs []string) domain.Arguments {
	if len(vpcIDs) == 0 {
		return domain.Arguments{}
	}
	switch e.filter {
	case vpcFilter:
		return domain.Arguments{Filters: []domain.Filter{{Name: domain.FilterVpcID, Values: vpcIDs}}}
	case attachmentVpcFilter:
		return domain.Arguments{Filters: []domain.Filter{{Name: domain.FilterAttachmentVpcID, Values: vpcIDs}}}
	default:
		return domain.Arguments{}
	}
}
