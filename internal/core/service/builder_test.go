package service

import (
	"context"
	stderrs "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports/mocks"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

func domainListing(names ...string) func(fetchCall) (domain.Document, error) {
	return func(c fetchCall) (domain.Document, error) {
		items := make([]any, 0, len(names))
		for _, n := range names {
			items = append(items, map[string]any{"DomainName": n, "EngineType": "Elasticsearch"})
		}
		return domain.Document{domain.KeyDomainNames: items}, nil
	}
}

func TestBuild_NoVPCs(t *testing.T) {
	fetcher := &fakeFetcher{respond: domainListing("logs", "search")}

	registry, err := NewRegistryBuilder(mocks.NewLogger()).Build(context.Background(), fetcher, "us-east-1", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "us-east-1", registry.Region())
	assert.Equal(t, len(computeCatalog)+4, registry.Len())
	assert.Equal(t, []domain.Operation{domain.OpListDomainNames}, fetcher.ops())

	for _, entry := range computeCatalog {
		d, ok := registry.Get(entry.category)
		require.True(t, ok, entry.category)
		assert.Equal(t, domain.ServiceCompute, d.Service())
		assert.Equal(t, entry.operation, d.Operation())
		assert.Empty(t, d.Args().Filters, entry.category)
	}

	es, ok := registry.Get(domain.CategoryElasticsearchDomains)
	require.True(t, ok)
	assert.Equal(t, []string{"logs", "search"}, es.Args().DomainNames)

	categories := registry.Categories()
	assert.Equal(t, domain.CategoryAddresses, categories[0])
	assert.Equal(t, []domain.Category{
		domain.CategoryElasticsearchDomains,
		domain.CategoryRdsInstances,
		domain.CategoryLoadBalancers,
		domain.CategoryTargetGroups,
	}, categories[len(categories)-4:])
}

func TestBuild_VPCFilters(t *testing.T) {
	vpcs := []string{"vpc-1", "vpc-2"}
	fetcher := &fakeFetcher{respond: domainListing()}

	registry, err := NewRegistryBuilder(mocks.NewLogger()).Build(context.Background(), fetcher, "eu-west-1", vpcs, nil)
	require.NoError(t, err)

	tests := []struct {
		category domain.Category
		want     []domain.Filter
	}{
		{domain.CategoryVpcs, []domain.Filter{{Name: "vpc-id", Values: vpcs}}},
		{domain.CategoryReservations, []domain.Filter{{Name: "vpc-id", Values: vpcs}}},
		{domain.CategoryNatGateways, []domain.Filter{{Name: "vpc-id", Values: vpcs}}},
		{domain.CategoryTransitGatewayVpcAttachments, []domain.Filter{{Name: "vpc-id", Values: vpcs}}},
		{domain.CategoryInternetGateways, []domain.Filter{{Name: "attachment.vpc-id", Values: vpcs}}},
		{domain.CategoryVpnGateways, []domain.Filter{{Name: "attachment.vpc-id", Values: vpcs}}},
		{domain.CategoryAddresses, nil},
		{domain.CategoryTags, nil},
		{domain.CategoryVpcPeeringConnections, nil},
	}
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			d, ok := registry.Get(tt.category)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Args().Filters)
		})
	}

	es, _ := registry.Get(domain.CategoryElasticsearchDomains)
	assert.NotNil(t, es.Args().DomainNames)
	assert.Empty(t, es.Args().DomainNames)
}

func TestBuild_SkipList(t *testing.T) {
	fetcher := &fakeFetcher{respond: domainListing()}
	skip := []domain.Category{domain.CategoryTags, "NotACategory", domain.CategoryRdsInstances}

	registry, err := NewRegistryBuilder(mocks.NewLogger()).Build(context.Background(), fetcher, "us-east-1", nil, skip)

	require.NoError(t, err)
	_, hasTags := registry.Get(domain.CategoryTags)
	assert.False(t, hasTags)
	_, hasRDS := registry.Get(domain.CategoryRdsInstances)
	assert.False(t, hasRDS)
	assert.Equal(t, len(computeCatalog)+4-2, registry.Len())
	assert.Equal(t, []domain.Category{domain.CategoryTags, domain.CategoryRdsInstances}, registry.Skipped())
}

func TestBuild_SkipListMarksDependentCategories(t *testing.T) {
	fetcher := &fakeFetcher{respond: domainListing()}
	skip := []domain.Category{domain.CategoryLoadBalancerListeners, domain.CategoryLoadBalancerListeners}

	registry, err := NewRegistryBuilder(mocks.NewLogger()).Build(context.Background(), fetcher, "us-east-1", nil, skip)

	require.NoError(t, err)
	assert.Equal(t, len(computeCatalog)+4, registry.Len())
	assert.True(t, registry.IsSkipped(domain.CategoryLoadBalancerListeners))
	assert.False(t, registry.IsSkipped(domain.CategoryLoadBalancerAttributes))
	assert.Equal(t, []domain.Category{domain.CategoryLoadBalancerListeners}, registry.Skipped())
}

func TestBuild_DomainDiscoveryFailureIsFatal(t *testing.T) {
	fetcher := &fakeFetcher{respond: func(fetchCall) (domain.Document, error) {
		return nil, &domain.FetchError{Region: "us-east-1", Service: domain.ServiceSearchIndexing, Operation: domain.OpListDomainNames, Err: stderrs.New("boom")}
	}}

	registry, err := NewRegistryBuilder(mocks.NewLogger()).Build(context.Background(), fetcher, "us-east-1", nil, nil)

	assert.Nil(t, registry)
	assert.Equal(t, errors.CodeRegistryBuildError, errors.GetCode(err))
}

func TestCatalogArgsAreIndependentCopies(t *testing.T) {
	vpcs := []string{"vpc-1"}
	fetcher := &fakeFetcher{respond: domainListing()}
	registry, err := NewRegistryBuilder(mocks.NewLogger()).Build(context.Background(), fetcher, "us-east-1", vpcs, nil)
	require.NoError(t, err)

	vpcs[0] = "vpc-mutated"
	d, _ := registry.Get(domain.CategoryVpcs)
	assert.Equal(t, []string{"vpc-1"}, d.Args().Filters[0].Values)
}
