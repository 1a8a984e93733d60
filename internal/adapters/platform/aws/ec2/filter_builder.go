package ec2

import (
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
)

// BuildEC2Filters converts keyword filters into SDK filters. Filters without a
// name are dropped; an empty input yields nil so the request carries no
// Filters member at all.
func BuildEC2Filters(filters []domain.Filter) []types.Filter {
	if len(filters) == 0 {
		return nil
	}
	ec2Filters := make([]types.Filter, 0, len(filters))
	for _, f := range filters {
		if f.Name == "" {
			continue
		}
		ec2Filters = append(ec2Filters, types.Filter{
			Name:   aws.String(f.Name),
			Values: slices.Clone(f.Values),
		})
	}
	if len(ec2Filters) == 0 {
		return nil
	}
	return ec2Filters
}
