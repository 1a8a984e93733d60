package ec2

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildEC2Filters(t *testing.T) {
	tests := []struct {
		name     string
		filters  []domain.Filter
		expected []types.Filter
	}{
		{
			name:     "nil filters",
			filters:  nil,
			expected: nil,
		},
		{
			name:     "vpc filter",
			filters:  []domain.Filter{{Name: domain.FilterVpcID, Values: []string{"vpc-1", "vpc-2"}}},
			expected: []types.Filter{{Name: aws.String("vpc-id"), Values: []string{"vpc-1", "vpc-2"}}},
		},
		{
			name: "unnamed filters dropped",
			filters: []domain.Filter{
				{Name: "", Values: []string{"x"}},
				{Name: domain.FilterType, Values: []string{"static"}},
			},
			expected: []types.Filter{{Name: aws.String("type"), Values: []string{"static"}}},
		},
		{
			name:     "only unnamed filters",
			filters:  []domain.Filter{{Values: []string{"x"}}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildEC2Filters(tt.filters))
		})
	}
}

func TestBuildEC2Filters_CopiesValues(t *testing.T) {
	values := []string{"vpc-1"}
	got := BuildEC2Filters([]domain.Filter{{Name: domain.FilterVpcID, Values: values}})
	values[0] = "vpc-changed"
	assert.Equal(t, []string{"vpc-1"}, got[0].Values)
}
