package shared

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/awstest"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
)

func TestToPage_StripsEnvelopeAndToken(t *testing.T) {
	out := &ec2.DescribeVpcsOutput{
		Vpcs:      []ec2types.Vpc{{VpcId: aws.String("vpc-1"), CidrBlock: aws.String("10.0.0.0/16")}},
		NextToken: aws.String("page-2"),
	}

	page, err := ToPage(out, domain.KeyNextToken)
	require.NoError(t, err)

	assert.Equal(t, "page-2", page.NextToken)
	assert.NotContains(t, page.Document, domain.KeyResultMetadata)
	assert.NotContains(t, page.Document, domain.KeyNextToken)

	vpcs, ok := page.Document["Vpcs"].([]any)
	require.True(t, ok)
	require.Len(t, vpcs, 1)
	assert.Equal(t, "vpc-1", vpcs[0].(map[string]any)["VpcId"])
}

func TestToPage_NoRawResponseMeansNoStatus(t *testing.T) {
	page, err := ToPage(&ec2.DescribeRegionsOutput{}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, page.Envelope.StatusCode)
	assert.Empty(t, page.NextToken)
}

func TestToPage_MarkerTokens(t *testing.T) {
	page, err := ToPage(&rds.DescribeDBInstancesOutput{Marker: aws.String("m-1")}, domain.KeyMarker)
	require.NoError(t, err)
	assert.Equal(t, "m-1", page.NextToken)
	assert.NotContains(t, page.Document, domain.KeyMarker)
}

func TestTokenPtr(t *testing.T) {
	assert.Nil(t, TokenPtr(""))
	assert.Equal(t, "abc", aws.ToString(TokenPtr("abc")))
}

func TestToPage_ReadsEnvelope(t *testing.T) {
	out := &ec2.DescribeRegionsOutput{ResultMetadata: awstest.Metadata(503, "req-7")}

	page, err := ToPage(out, "")
	require.NoError(t, err)

	assert.Equal(t, domain.Envelope{StatusCode: 503, RequestID: "req-7"}, page.Envelope)
}

func TestToPage_SparseResponseKeepsOnlySentMembers(t *testing.T) {
	out := &ec2.DescribeVpcsOutput{
		Vpcs:           []ec2types.Vpc{{VpcId: aws.String("vpc-1")}},
		ResultMetadata: awstest.OK(),
	}

	page, err := ToPage(out, domain.KeyNextToken)
	require.NoError(t, err)

	want := domain.Document{
		"Vpcs": []any{map[string]any{"VpcId": "vpc-1"}},
	}
	if diff := cmp.Diff(want, page.Document); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestToPage_AbsentListIsLeftOut(t *testing.T) {
	page, err := ToPage(&ec2.DescribeSubnetsOutput{ResultMetadata: awstest.OK()}, domain.KeyNextToken)
	require.NoError(t, err)
	assert.Empty(t, page.Document)
	assert.Equal(t, 200, page.Envelope.StatusCode)
}

func TestToPage_SetEnumsSurvive(t *testing.T) {
	out := &ec2.DescribeVpcsOutput{
		Vpcs: []ec2types.Vpc{{VpcId: aws.String("vpc-1"), State: ec2types.VpcStateAvailable}},
	}

	page, err := ToPage(out, domain.KeyNextToken)
	require.NoError(t, err)

	vpc := page.Document["Vpcs"].([]any)[0].(map[string]any)
	assert.Equal(t, "available", vpc["State"])
	assert.NotContains(t, vpc, "InstanceTenancy")
	assert.NotContains(t, vpc, "IsDefault")
}
