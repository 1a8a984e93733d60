package domain

// Category names one class of resource captured in a snapshot. It doubles as
// the output file name and as the top-level key of dependent documents.
type Category string

const (
	CategoryAddresses                    Category = "Addresses"
	CategoryAvailabilityZones            Category = "AvailabilityZones"
	CategoryClassicLinkInstances         Category = "ClassicLinkInstances"
	CategoryCustomerGateways             Category = "CustomerGateways"
	CategoryDhcpOptions                  Category = "DhcpOptions"
	CategoryHosts                        Category = "Hosts"
	CategoryInstanceStatuses             Category = "InstanceStatuses"
	CategoryInternetGateways             Category = "InternetGateways"
	CategoryMovingAddressStatuses        Category = "MovingAddressStatuses"
	CategoryNatGateways                  Category = "NatGateways"
	CategoryNetworkAcls                  Category = "NetworkAcls"
	CategoryNetworkInterfaces            Category = "NetworkInterfaces"
	CategoryPlacementGroups              Category = "PlacementGroups"
	CategoryPrefixLists                  Category = "PrefixLists"
	CategoryReservations                 Category = "Reservations"
	CategoryRouteTables                  Category = "RouteTables"
	CategorySecurityGroups               Category = "SecurityGroups"
	CategorySubnets                      Category = "Subnets"
	CategoryTags                         Category = "Tags"
	CategoryTransitGatewayAttachments    Category = "TransitGatewayAttachments"
	CategoryTransitGatewayRouteTables    Category = "TransitGatewayRouteTables"
	CategoryTransitGatewayVpcAttachments Category = "TransitGatewayVpcAttachments"
	CategoryTransitGateways              Category = "TransitGateways"
	CategoryVpcEndpoints                 Category = "VpcEndpoints"
	CategoryVpcPeeringConnections        Category = "VpcPeeringConnections"
	CategoryVpcs                         Category = "Vpcs"
	CategoryVpcClassicLink               Category = "VpcClassicLink"
	CategoryVpcClassicLinkDnsSupport     Category = "VpcClassicLinkDnsSupport"
	CategoryVpcEndpointServices          Category = "VpcEndpointServices"
	CategoryVpnConnections               Category = "VpnConnections"
	CategoryVpnGateways                  Category = "VpnGateways"

	CategoryElasticsearchDomains Category = "ElasticsearchDomains"
	CategoryRdsInstances         Category = "RdsInstances"
	CategoryLoadBalancers        Category = "LoadBalancers"
	CategoryTargetGroups         Category = "TargetGroups"

	// Written by dependent fetches, never present in a fetch registry.
	CategoryLoadBalancerListeners      Category = "LoadBalancerListeners"
	CategoryLoadBalancerAttributes     Category = "LoadBalancerAttributes"
	CategoryLoadBalancerTargetHealth   Category = "LoadBalancerTargetHealth"
	CategoryTransitGatewayPropagations Category = "TransitGatewayPropagations"
	CategoryTransitGatewayStaticRoutes Category = "TransitGatewayStaticRoutes"
)

func (c Category) String() string {
	return string(c)
}

// Categories converts plain names, as read from configuration, into categories.
func Categories(names []string) []Category {
	out := make([]Category, 0, len(names))
	for _, n := range names {
		out = append(out, Category(n))
	}
	return out
}
