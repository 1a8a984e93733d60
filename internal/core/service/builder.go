package service

import (
	"context"
	"fmt"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

var domainNames = mustCompile(`.DomainNames[]? | .DomainName // empty`)

// RegistryBuilder assembles the fetch registry of a region.
type RegistryBuilder struct {
	logger ports.Logger
}

func NewRegistryBuilder(logger ports.Logger) *RegistryBuilder {
	return &RegistryBuilder{logger: logger}
}

// Build registers the compute catalog, then the search domains, database
// instances, load balancers and target groups, and finally drops every
// category named in skip. The search domain names are listed eagerly; if that
// fails the region gets no registry at all.
func (b *RegistryBuilder) Build(ctx context.Context, fetcher Fetcher, region string, vpcIDs []string, skip []domain.Category) (*domain.FetchRegistry, error) {
	registry := domain.NewFetchRegistry(region)

	for _, entry := range computeCatalog {
		registry.Add(entry.category, domain.NewDescriptor(domain.ServiceCompute, entry.operation, entry.args(vpcIDs)))
	}

	names, err := b.listDomainNames(ctx, fetcher)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeRegistryBuildError,
			fmt.Sprintf("failed to list search domains in region '%s'", region))
	}
	registry.Add(domain.CategoryElasticsearchDomains, domain.NewDescriptor(domain.ServiceSearchIndexing,
		domain.OpDescribeElasticsearchDomains, domain.Arguments{DomainNames: names}))
	registry.Add(domain.CategoryRdsInstances, domain.NewDescriptor(domain.ServiceRelationalStorage,
		domain.OpDescribeDBInstances, domain.Arguments{}))
	registry.Add(domain.CategoryLoadBalancers, domain.NewDescriptor(domain.ServiceLoadBalancing,
		domain.OpDescribeLoadBalancers, domain.Arguments{}))
	registry.Add(domain.CategoryTargetGroups, domain.NewDescriptor(domain.ServiceLoadBalancing,
		domain.OpDescribeTargetGroups, domain.Arguments{}))

	for _, category := range skip {
		switch {
		case registry.Remove(category):
		case isDependentCategory(category):
			registry.SkipDependent(category)
		default:
			b.logger.Debugf(ctx, "Skip entry '%s' matches no category in region %s", category, region)
		}
	}
	b.logger.Debugf(ctx, "Registry for %s holds %d categories (%d skipped)", region, registry.Len(), len(registry.Skipped()))
	return registry, nil
}

func (b *RegistryBuilder) listDomainNames(ctx context.Context, fetcher Fetcher) ([]string, error) {
	doc, err := fetcher.Execute(ctx, domain.ServiceSearchIndexing, domain.OpListDomainNames, domain.Arguments{})
	if err != nil {
		return nil, err
	}
	names, err := domainNames.strings(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeMalformedResponse, "unreadable domain name listing")
	}
	return names, nil
}
