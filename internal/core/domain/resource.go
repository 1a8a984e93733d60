package domain

import (
	"fmt"
	"slices"
)

// Service identifies an authenticated sub-client of the provider.
type Service string

const (
	ServiceCompute           Service = "ec2"
	ServiceLoadBalancing     Service = "elbv2"
	ServiceRelationalStorage Service = "rds"
	ServiceSearchIndexing    Service = "es"
)

func (s Service) String() string {
	return string(s)
}

// Operation is a read operation exposed by a Service.
type Operation string

const (
	OpDescribeAddresses                       Operation = "DescribeAddresses"
	OpDescribeAvailabilityZones               Operation = "DescribeAvailabilityZones"
	OpDescribeClassicLinkInstances            Operation = "DescribeClassicLinkInstances"
	OpDescribeCustomerGateways                Operation = "DescribeCustomerGateways"
	OpDescribeDhcpOptions                     Operation = "DescribeDhcpOptions"
	OpDescribeHosts                           Operation = "DescribeHosts"
	OpDescribeInstanceStatus                  Operation = "DescribeInstanceStatus"
	OpDescribeInternetGateways                Operation = "DescribeInternetGateways"
	OpDescribeMovingAddresses                 Operation = "DescribeMovingAddresses"
	OpDescribeNatGateways                     Operation = "DescribeNatGateways"
	OpDescribeNetworkAcls                     Operation = "DescribeNetworkAcls"
	OpDescribeNetworkInterfaces               Operation = "DescribeNetworkInterfaces"
	OpDescribePlacementGroups                 Operation = "DescribePlacementGroups"
	OpDescribePrefixLists                     Operation = "DescribePrefixLists"
	OpDescribeInstances                       Operation = "DescribeInstances"
	OpDescribeRouteTables                     Operation = "DescribeRouteTables"
	OpDescribeSecurityGroups                  Operation = "DescribeSecurityGroups"
	OpDescribeSubnets                         Operation = "DescribeSubnets"
	OpDescribeTags                            Operation = "DescribeTags"
	OpDescribeTransitGatewayAttachments       Operation = "DescribeTransitGatewayAttachments"
	OpDescribeTransitGatewayRouteTables       Operation = "DescribeTransitGatewayRouteTables"
	OpDescribeTransitGatewayVpcAttachments    Operation = "DescribeTransitGatewayVpcAttachments"
	OpDescribeTransitGateways                 Operation = "DescribeTransitGateways"
	OpDescribeVpcEndpoints                    Operation = "DescribeVpcEndpoints"
	OpDescribeVpcPeeringConnections           Operation = "DescribeVpcPeeringConnections"
	OpDescribeVpcs                            Operation = "DescribeVpcs"
	OpDescribeVpcClassicLink                  Operation = "DescribeVpcClassicLink"
	OpDescribeVpcClassicLinkDnsSupport        Operation = "DescribeVpcClassicLinkDnsSupport"
	OpDescribeVpcEndpointServices             Operation = "DescribeVpcEndpointServices"
	OpDescribeVpnConnections                  Operation = "DescribeVpnConnections"
	OpDescribeVpnGateways                     Operation = "DescribeVpnGateways"
	OpDescribeRegions                         Operation = "DescribeRegions"
	OpGetTransitGatewayRouteTablePropagations Operation = "GetTransitGatewayRouteTablePropagations"
	OpSearchTransitGatewayRoutes              Operation = "SearchTransitGatewayRoutes"

	OpDescribeLoadBalancers          Operation = "DescribeLoadBalancers"
	OpDescribeTargetGroups           Operation = "DescribeTargetGroups"
	OpDescribeListeners              Operation = "DescribeListeners"
	OpDescribeLoadBalancerAttributes Operation = "DescribeLoadBalancerAttributes"
	OpDescribeTargetHealth           Operation = "DescribeTargetHealth"

	OpDescribeDBInstances Operation = "DescribeDBInstances"

	OpListDomainNames              Operation = "ListDomainNames"
	OpDescribeElasticsearchDomains Operation = "DescribeElasticsearchDomains"
)

func (o Operation) String() string {
	return string(o)
}

type Filter struct {
	Name   string
	Values []string
}

// Arguments are the keyword filters of a single fetch. ResourceID carries the
// correlating id of a dependent fetch (load balancer ARN, target group ARN or
// transit gateway route table id, depending on the operation).
type Arguments struct {
	Filters     []Filter
	DomainNames []string
	ResourceID  string
}

// Clone returns a deep copy. A non-nil empty DomainNames stays non-nil.
func (a Arguments) Clone() Arguments {
	out := Arguments{ResourceID: a.ResourceID}
	if a.Filters != nil {
		out.Filters = make([]Filter, len(a.Filters))
		for i, f := range a.Filters {
			out.Filters[i] = Filter{Name: f.Name, Values: slices.Clone(f.Values)}
		}
	}
	if a.DomainNames != nil {
		out.DomainNames = make([]string, len(a.DomainNames))
		copy(out.DomainNames, a.DomainNames)
	}
	return out
}

// Descriptor identifies one retrievable resource listing. It is immutable:
// the arguments are copied on the way in and on the way out.
type Descriptor struct {
	service   Service
	operation Operation
	args      Arguments
}

func NewDescriptor(service Service, operation Operation, args Arguments) Descriptor {
	return Descriptor{service: service, operation: operation, args: args.Clone()}
}

func (d Descriptor) Service() Service     { return d.service }
func (d Descriptor) Operation() Operation { return d.operation }
func (d Descriptor) Args() Arguments      { return d.args.Clone() }

func (d Descriptor) String() string {
	return fmt.Sprintf("%s:%s", d.service, d.operation)
}
