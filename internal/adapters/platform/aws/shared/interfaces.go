package shared

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// ErrorHandler defines an interface for handling errors from AWS API calls.
type ErrorHandler interface {
	// Handle classifies err, raised by operation of service, into an
	// application error. Cancellation is reported as such.
	Handle(ctx context.Context, service, operation string, err error) error
}

// STSClientInterface defines the method needed from the AWS SDK STS client.
type STSClientInterface interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// RegionsClientInterface is the compute call used to probe credentials.
type RegionsClientInterface interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}
