package domain

// Field names inside response documents that the collector reads or writes.
const (
	KeyRegions                    = "Regions"
	KeyRegionName                 = "RegionName"
	KeyDomainNames                = "DomainNames"
	KeyDomainName                 = "DomainName"
	KeyLoadBalancerArn            = "LoadBalancerArn"
	KeyLoadBalancerName           = "LoadBalancerName"
	KeyTargetGroupArn             = "TargetGroupArn"
	KeyTargetGroupName            = "TargetGroupName"
	KeyTransitGatewayRouteTableID = "TransitGatewayRouteTableId"
	KeyAdditionalRoutesAvailable  = "AdditionalRoutesAvailable"

	// Envelope and continuation fields stripped from every document.
	KeyResultMetadata = "ResultMetadata"
	KeyNextToken      = "NextToken"
	KeyNextMarker     = "NextMarker"
	KeyMarker         = "Marker"
)

// Filter names understood by the compute service.
const (
	FilterVpcID           = "vpc-id"
	FilterAttachmentVpcID = "attachment.vpc-id"
	FilterType            = "type"
)

// BootstrapRegion is queried for the list of available regions when none
// are configured.
const BootstrapRegion = "us-west-1"
